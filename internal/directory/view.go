package directory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type SortKey string

const (
	SortNone SortKey = ""
	SortName SortKey = "name"
	SortAge  SortKey = "age"
)

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// Sort selects the ordering of a derived list. The zero value keeps store order.
type Sort struct {
	Key       SortKey
	Direction SortDirection
}

// SortOptions lists the accepted selector values in menu order.
var SortOptions = []string{"name-asc", "name-desc", "age-asc", "age-desc"}

var sortLabels = map[string]string{
	"name-asc":  "Name (A-Z)",
	"name-desc": "Name (Z-A)",
	"age-asc":   "Age (Ascending)",
	"age-desc":  "Age (Descending)",
}

// ParseSortOption parses a selector value such as "age-desc".
func ParseSortOption(v string) (Sort, error) {
	if !slices.Contains(SortOptions, v) {
		return Sort{}, fmt.Errorf("%w: %q", ErrInvalidSortOption, v)
	}
	key, dir, _ := strings.Cut(v, "-")
	return Sort{Key: SortKey(key), Direction: SortDirection(dir)}, nil
}

func (s Sort) String() string {
	if s.Key == SortNone {
		return ""
	}
	dir := s.Direction
	if dir == "" {
		dir = Asc
	}
	return string(s.Key) + "-" + string(dir)
}

// Label is the human-readable selector text.
func (s Sort) Label() string {
	if l, ok := sortLabels[s.String()]; ok {
		return l
	}
	return "Unsorted"
}

// NormalizeSearch lower-cases and trims a search term.
func NormalizeSearch(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Derive filters records by a case-insensitive name substring and orders them.
// The input is never modified; a new slice is returned on every call.
func Derive(records []Person, searchTerm string, s Sort) []Person {
	term := NormalizeSearch(searchTerm)
	out := make([]Person, 0, len(records))
	for _, r := range records {
		if term == "" || strings.Contains(strings.ToLower(r.Name), term) {
			out = append(out, r)
		}
	}
	if s.Key == SortNone {
		return out
	}
	compare := func(a, b Person) int {
		if s.Key == SortAge {
			return cmp.Compare(a.Age, b.Age)
		}
		return strings.Compare(a.Name, b.Name)
	}
	if s.Direction == Desc {
		slices.SortStableFunc(out, func(a, b Person) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out
}
