package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActor(t *testing.T) *Actor {
	t.Helper()
	a, err := NewActor(1, "John Doe", 1990, "USA")
	require.NoError(t, err)
	return a
}

func TestNewActor(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		actorName string
		birthYear int
		country   string
		wantErr   error
	}{
		{name: "valid actor", id: 1, actorName: "John Doe", birthYear: 1990, country: "USA"},
		{name: "zero id", id: 0, actorName: "John Doe", birthYear: 1990},
		{name: "absent country", id: 3, actorName: "Jane", birthYear: 1820},
		{name: "negative id", id: -1, actorName: "John Doe", birthYear: 1990, wantErr: ErrNegativeID},
		{name: "empty name", id: 1, actorName: "", birthYear: 1990, wantErr: ErrBlankName},
		{name: "short name", id: 1, actorName: "Tom", birthYear: 1990, wantErr: ErrNameTooShort},
		{name: "birth year too early", id: 1, actorName: "John Doe", birthYear: 1819, wantErr: ErrBirthYearOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewActor(tt.id, tt.actorName, tt.birthYear, tt.country)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, a.ID())
			assert.Equal(t, tt.actorName, a.Name())
			assert.Equal(t, tt.birthYear, a.BirthYear())
			assert.Equal(t, tt.country, a.Country())
		})
	}
}

func TestActorSetID(t *testing.T) {
	for _, id := range []int{-1, -100} {
		a := newTestActor(t)
		err := a.SetID(id)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNegativeID)
		assert.Contains(t, err.Error(), "id must be non-negative")
		assert.Equal(t, 1, a.ID(), "id should not change on error")
	}

	a := newTestActor(t)
	require.NoError(t, a.SetID(5))
	assert.Equal(t, 5, a.ID())
	require.NoError(t, a.SetID(0))
	assert.Equal(t, 0, a.ID())
}

func TestActorSetName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "empty", value: "", wantErr: ErrBlankName},
		{name: "spaces", value: "   ", wantErr: ErrBlankName},
		{name: "tabs and newlines", value: "\t\n", wantErr: ErrBlankName},
		{name: "three chars", value: "Tom", wantErr: ErrNameTooShort},
		{name: "short with padding counts raw length", value: " Al ", wantErr: nil},
		{name: "exactly four chars", value: "John", wantErr: nil},
		{name: "multibyte four chars", value: "Åsa!", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestActor(t)
			err := a.SetName(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidation(err))
				assert.Equal(t, "John Doe", a.Name(), "name should not change on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, a.Name(), "name is stored untrimmed")
		})
	}
}

func TestActorSetBirthYear(t *testing.T) {
	current := time.Now().Year()

	t.Run("out of range rejected", func(t *testing.T) {
		for _, year := range []int{1500, 1819, current + 1} {
			a := newTestActor(t)
			err := a.SetBirthYear(year)
			assert.ErrorIs(t, err, ErrBirthYearOutOfRange, "year %d", year)
			assert.Equal(t, 1990, a.BirthYear())
		}
	})

	t.Run("boundaries accepted", func(t *testing.T) {
		a := newTestActor(t)
		require.NoError(t, a.SetBirthYear(MinBirthYear))
		assert.Equal(t, MinBirthYear, a.BirthYear())
		require.NoError(t, a.SetBirthYear(current))
		assert.Equal(t, current, a.BirthYear())
	})

	t.Run("upper bound follows the clock", func(t *testing.T) {
		orig := now
		t.Cleanup(func() { now = orig })

		now = func() time.Time { return time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC) }
		a := newTestActor(t)
		require.NoError(t, a.SetBirthYear(2030))
		assert.ErrorIs(t, a.SetBirthYear(2031), ErrBirthYearOutOfRange)
	})
}

func TestActorSetCountry(t *testing.T) {
	a := newTestActor(t)
	a.SetCountry("  Denmark ")
	assert.Equal(t, "  Denmark ", a.Country())
	a.SetCountry("")
	assert.Equal(t, "", a.Country())
}

func TestActorValidate(t *testing.T) {
	assert.NoError(t, newTestActor(t).Validate())
	assert.ErrorIs(t, (&Actor{}).Validate(), ErrBlankName)
	assert.ErrorIs(t, (&Actor{name: "John Doe"}).Validate(), ErrBirthYearOutOfRange)
	assert.ErrorIs(t, (&Actor{id: -2, name: "John Doe", birthYear: 1990}).Validate(), ErrNegativeID)
}

func TestActorString(t *testing.T) {
	a := newTestActor(t)
	assert.Equal(t, "Id: 1, Name: John Doe, Birthyear: (1990), Country: USA", a.String())

	a.SetCountry("")
	assert.Equal(t, "Id: 1, Name: John Doe, Birthyear: (1990), Country: N/A", a.String())
}

func TestActorJSON(t *testing.T) {
	a := newTestActor(t)
	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"John Doe","birth_year":1990,"country":"USA"}`, string(data))

	var decoded Actor
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, a.Record(), decoded.Record())

	err = json.Unmarshal([]byte(`{"id":1,"name":"Al","birth_year":1990}`), &decoded)
	assert.ErrorIs(t, err, ErrNameTooShort)
	assert.Equal(t, "John Doe", decoded.Name(), "receiver unchanged on invalid input")
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := NewActor(1, "Tom", 1990, "")
	require.Error(t, err)
	assert.Equal(t, `invalid name "Tom": name too short`, err.Error())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "Tom", verr.Value)
	assert.False(t, IsInvalidArgument(err))
}
