package form

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/agebook/internal/directory"
)

func setup(t *testing.T) (*directory.Store, *Controller) {
	t.Helper()
	store := directory.NewStore()
	require.NoError(t, store.Insert(directory.Person{ID: "1", Name: "Person 1", Age: 16, Email: "person1@example.com", Phone: "123-456-7890"}))
	return store, NewController(store, nil)
}

func TestSubmitEmptyNameKeepsFormOpen(t *testing.T) {
	store, c := setup(t)
	c.OpenForAdd()

	_, err := c.Submit(Values{Name: "", Age: "5", Email: "x@y.com", Phone: "1"})
	ve, ok := directory.IsValidation(err)
	require.True(t, ok)
	require.True(t, ve.Has(directory.FieldName))
	require.Len(t, ve.Fields, 1)

	require.True(t, c.IsOpen())
	require.Equal(t, ModeAdd, c.Mode())
	require.Contains(t, c.Errors(), directory.FieldName)
	require.Equal(t, "x@y.com", c.Values().Email)
	require.Equal(t, 1, store.Len())
}

func TestSubmitAddCreatesAndCloses(t *testing.T) {
	store, c := setup(t)
	c.OpenForAdd()
	require.Equal(t, "Add Person", c.Title())
	require.Equal(t, "Add", c.SubmitLabel())

	p, err := c.Submit(Values{Name: " Dana ", Age: "31", Email: "dana@example.com", Phone: "555"})
	require.NoError(t, err)
	require.Equal(t, "Dana", p.Name)
	require.Equal(t, 31, p.Age)
	require.False(t, c.IsOpen())
	require.Equal(t, Values{}, c.Values())
	require.Equal(t, 2, store.Len())
}

func TestOpenForEditPrefillsAndSaves(t *testing.T) {
	store, c := setup(t)
	require.NoError(t, c.OpenForEdit("1"))
	require.Equal(t, ModeEdit, c.Mode())
	require.Equal(t, "Edit Person", c.Title())
	require.Equal(t, "Save", c.SubmitLabel())
	require.Equal(t, Values{Name: "Person 1", Age: "16", Email: "person1@example.com", Phone: "123-456-7890"}, c.Values())

	v := c.Values()
	v.Age = "40"
	p, err := c.Submit(v)
	require.NoError(t, err)
	require.Equal(t, "1", p.ID)
	got, err := store.Get("1")
	require.NoError(t, err)
	require.Equal(t, 40, got.Age)
	require.False(t, c.IsOpen())
}

func TestOpenForEditMissingStaysClosed(t *testing.T) {
	_, c := setup(t)
	err := c.OpenForEdit("nope")
	require.ErrorIs(t, err, directory.ErrNotFound)
	require.False(t, c.IsOpen())
}

func TestSubmitEditAfterDeleteCloses(t *testing.T) {
	store, c := setup(t)
	require.NoError(t, c.OpenForEdit("1"))
	store.Delete("1")

	_, err := c.Submit(Values{Name: "Ghost", Age: "20", Email: "g@example.com", Phone: "1"})
	require.ErrorIs(t, err, directory.ErrNotFound)
	require.False(t, c.IsOpen())
	require.Equal(t, 0, store.Len())
}

func TestCancelDiscardsEdits(t *testing.T) {
	store, c := setup(t)
	require.NoError(t, c.OpenForEdit("1"))
	c.SetValue(directory.FieldName, "Changed")
	require.Equal(t, "Changed", c.Values().Name)

	c.Cancel()
	require.False(t, c.IsOpen())
	require.Empty(t, c.EditingID())
	got, _ := store.Get("1")
	require.Equal(t, "Person 1", got.Name)
}

func TestSubmitWhileClosedFails(t *testing.T) {
	_, c := setup(t)
	_, err := c.Submit(Values{Name: "A", Age: "1", Email: "a@b.co", Phone: "1"})
	require.Error(t, err)
}

func TestParseAge(t *testing.T) {
	cases := []struct {
		age     string
		wantErr bool
		want    int
	}{
		{age: "0", want: 0},
		{age: " 42 ", want: 42},
		{age: "", wantErr: true},
		{age: "abc", wantErr: true},
		{age: "4.5", wantErr: true},
		{age: "-3", wantErr: true},
	}
	for _, tc := range cases {
		f, err := Parse(Values{Name: "A", Age: tc.age, Email: "a@b.co", Phone: "1"})
		if tc.wantErr {
			ve, ok := directory.IsValidation(err)
			require.True(t, ok, tc.age)
			require.True(t, ve.Has(directory.FieldAge), tc.age)
			continue
		}
		require.NoError(t, err, tc.age)
		require.Equal(t, tc.want, f.Age)
	}
}

func TestParseEmailShape(t *testing.T) {
	_, err := Parse(Values{Name: "A", Age: "1", Email: "not-an-email", Phone: "1"})
	ve, ok := directory.IsValidation(err)
	require.True(t, ok)
	require.Equal(t, "not a valid email", ve.Fields[directory.FieldEmail])
}
