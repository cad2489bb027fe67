package directory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDeriveSearchIsCaseInsensitive(t *testing.T) {
	store := []Person{
		{ID: "1", Name: "Ann", Age: 16},
		{ID: "2", Name: "Bob", Age: 20},
	}
	got := Derive(store, "an", Sort{})
	if diff := cmp.Diff([]Person{store[0]}, got); diff != "" {
		t.Fatalf("derive mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, Derive(store, "  AN ", Sort{}), 1)
	require.Len(t, Derive(store, "", Sort{}), 2)
}

func TestDeriveSortByAgeDesc(t *testing.T) {
	store := []Person{{ID: "a", Age: 16}, {ID: "b", Age: 20}, {ID: "c", Age: 30}}
	got := Derive(store, "", Sort{Key: SortAge, Direction: Desc})
	require.Equal(t, []int{30, 20, 16}, ages(got))
	require.Equal(t, []int{16, 20, 30}, ages(store), "input must not be reordered")
}

func TestDeriveSortIsStable(t *testing.T) {
	store := []Person{
		{ID: "1", Name: "Zoe", Age: 30},
		{ID: "2", Name: "Amy", Age: 20},
		{ID: "3", Name: "Ben", Age: 30},
		{ID: "4", Name: "Cid", Age: 20},
	}
	asc := Derive(store, "", Sort{Key: SortAge, Direction: Asc})
	require.Equal(t, []string{"2", "4", "1", "3"}, ids(asc))
	desc := Derive(store, "", Sort{Key: SortAge, Direction: Desc})
	require.Equal(t, []string{"1", "3", "2", "4"}, ids(desc))
	byName := Derive(store, "", Sort{Key: SortName, Direction: Asc})
	require.Equal(t, []string{"2", "3", "4", "1"}, ids(byName))
}

func TestDeriveWithoutSortKeepsStoreOrder(t *testing.T) {
	store := []Person{{ID: "3", Age: 50}, {ID: "1", Age: 10}, {ID: "2", Age: 30}}
	require.Equal(t, []string{"3", "1", "2"}, ids(Derive(store, "", Sort{})))
}

func TestDeriveIsIdempotent(t *testing.T) {
	store := []Person{
		{ID: "1", Name: "Anna", Age: 40},
		{ID: "2", Name: "Hannah", Age: 12},
		{ID: "3", Name: "Bob", Age: 22},
		{ID: "4", Name: "Dan", Age: 12},
	}
	for _, opt := range SortOptions {
		s, err := ParseSortOption(opt)
		require.NoError(t, err)
		once := Derive(store, "an", s)
		twice := Derive(once, "an", s)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("%s: not idempotent (-once +twice):\n%s", opt, diff)
		}
	}
}

func TestDeriveReturnsNewSlice(t *testing.T) {
	store := []Person{{ID: "1", Name: "Ann"}}
	got := Derive(store, "", Sort{})
	got[0].Name = "changed"
	require.Equal(t, "Ann", store[0].Name)
}

func TestParseSortOption(t *testing.T) {
	s, err := ParseSortOption("name-desc")
	require.NoError(t, err)
	require.Equal(t, Sort{Key: SortName, Direction: Desc}, s)
	require.Equal(t, "name-desc", s.String())
	require.Equal(t, "Name (Z-A)", s.Label())

	for _, bad := range []string{"", "email-asc", "age", "age-up"} {
		_, err := ParseSortOption(bad)
		require.ErrorIs(t, err, ErrInvalidSortOption, bad)
	}
	require.Equal(t, "Unsorted", Sort{}.Label())
}

func ages(people []Person) []int {
	out := make([]int, 0, len(people))
	for _, p := range people {
		out = append(out, p.Age)
	}
	return out
}
