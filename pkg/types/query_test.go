package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"name", SortByName},
		{"NAME", SortByName},
		{"Name", SortByName},
		{"birthyear", SortByBirthYear},
		{"BirthYear", SortByBirthYear},
		{"id", SortByID},
		{"", SortByID},
		{"unknown", SortByID},
		{"birth_year", SortByID},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortKey(tt.in))
		})
	}
}

func TestSortKeyString(t *testing.T) {
	assert.Equal(t, "id", SortByID.String())
	assert.Equal(t, "name", SortByName.String())
	assert.Equal(t, "birthyear", SortByBirthYear.String())
	assert.Equal(t, SortByBirthYear, ParseSortKey(SortByBirthYear.String()))
}

func TestZeroQuery(t *testing.T) {
	var q Query
	assert.Nil(t, q.BirthYearBefore)
	assert.Nil(t, q.BirthYearAfter)
	assert.Equal(t, SortByID, q.SortBy)
	assert.False(t, q.Descending)
	assert.Equal(t, 1970, *Year(1970))
}
