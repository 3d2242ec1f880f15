package types

import "strings"

// SortKey selects the field a query orders its results by.
// The zero value sorts by id.
type SortKey int

const (
	SortByID SortKey = iota
	SortByName
	SortByBirthYear
)

// ParseSortKey maps "name" and "birthyear" (any case) to their keys.
// Every other value, including the empty string and "id", yields SortByID.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(s) {
	case "name":
		return SortByName
	case "birthyear":
		return SortByBirthYear
	default:
		return SortByID
	}
}

func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "name"
	case SortByBirthYear:
		return "birthyear"
	default:
		return "id"
	}
}

// Query describes a filtered, sorted view of a repository. Every filter is
// optional and they combine with AND. The zero Query returns everything
// ordered by id ascending.
type Query struct {
	// BirthYearBefore keeps actors born strictly before the bound.
	BirthYearBefore *int
	// BirthYearAfter keeps actors born strictly after the bound.
	BirthYearAfter *int
	// NameContains is trimmed, then matched case-insensitively against
	// names. Blank means no filter.
	NameContains string
	SortBy       SortKey
	Descending   bool
}

// Year returns a pointer to y, for the optional bounds of Query.
func Year(y int) *int {
	return &y
}
