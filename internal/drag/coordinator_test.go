package drag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/agebook/internal/directory"
)

func newStore(t *testing.T, people ...directory.Person) *directory.Store {
	t.Helper()
	s := directory.NewStore()
	for _, p := range people {
		p.Email = p.ID + "@example.com"
		p.Phone = "1"
		if p.Name == "" {
			p.Name = "P" + p.ID
		}
		require.NoError(t, s.Insert(p))
	}
	return s
}

func order(s *directory.Store) []string {
	var out []string
	for _, p := range s.List() {
		out = append(out, p.ID)
	}
	return out
}

func TestDropClampsAgeIntoTarget(t *testing.T) {
	s := newStore(t, directory.Person{ID: "1", Age: 16}, directory.Person{ID: "2", Age: 20})
	c := NewCoordinator(s, nil)
	c.StartDrag("1")
	require.True(t, c.DragOver(directory.Buckets[1]))

	res, err := c.DropOnBucket(directory.Buckets[1], 1)
	require.NoError(t, err)
	require.True(t, res.Moved)
	require.Equal(t, 16, res.FromAge)
	require.Equal(t, 19, res.Person.Age)

	got, _ := s.Get("1")
	require.Equal(t, 19, got.Age)
	require.Equal(t, []string{"2", "1"}, order(s))
	idx, _ := directory.BucketFor(got.Age)
	require.Equal(t, 1, idx)

	_, active := c.Active()
	require.False(t, active)
}

func TestDropInsideCurrentBucketIsNoop(t *testing.T) {
	s := newStore(t, directory.Person{ID: "1", Age: 16}, directory.Person{ID: "2", Age: 20}, directory.Person{ID: "3", Age: 22})
	c := NewCoordinator(s, nil)
	c.StartDrag("2")

	res, err := c.DropOnBucket(directory.Buckets[1], 2)
	require.NoError(t, err)
	require.False(t, res.Moved)
	got, _ := s.Get("2")
	require.Equal(t, 20, got.Age)
	require.Equal(t, []string{"1", "2", "3"}, order(s))
	_, active := c.Active()
	require.False(t, active)
}

func TestDropClampsDownward(t *testing.T) {
	s := newStore(t, directory.Person{ID: "1", Age: 90})
	c := NewCoordinator(s, nil)
	c.StartDrag("1")
	res, err := c.DropOnBucket(directory.Buckets[0], 0)
	require.NoError(t, err)
	require.Equal(t, 18, res.Person.Age)
}

func TestDropWithoutSource(t *testing.T) {
	c := NewCoordinator(newStore(t), nil)
	require.False(t, c.DragOver(directory.Buckets[0]))
	_, err := c.DropOnBucket(directory.Buckets[0], 0)
	require.ErrorIs(t, err, ErrNoDragSource)
}

func TestDropDeletedSourceClearsDrag(t *testing.T) {
	s := newStore(t, directory.Person{ID: "1", Age: 16})
	c := NewCoordinator(s, nil)
	c.StartDrag("1")
	s.Delete("1")
	_, err := c.DropOnBucket(directory.Buckets[2], 0)
	require.ErrorIs(t, err, directory.ErrNotFound)
	_, active := c.Active()
	require.False(t, active)
}

func TestLatestStartDragWins(t *testing.T) {
	s := newStore(t, directory.Person{ID: "1", Age: 16}, directory.Person{ID: "2", Age: 50})
	c := NewCoordinator(s, nil)
	c.StartDrag("1")
	c.StartDrag("2")
	id, ok := c.Active()
	require.True(t, ok)
	require.Equal(t, "2", id)
	c.Cancel()
	_, ok = c.Active()
	require.False(t, ok)
}

func TestInsertionIndex(t *testing.T) {
	s := newStore(t,
		directory.Person{ID: "a", Age: 10},
		directory.Person{ID: "b", Age: 20},
		directory.Person{ID: "c", Age: 30},
		directory.Person{ID: "d", Age: 21},
	)
	bucket := directory.Partition(s.List(), directory.Buckets[1]) // b, d

	require.Equal(t, 0, InsertionIndex(s, "a", bucket, 0))
	require.Equal(t, 2, InsertionIndex(s, "a", bucket, 1))
	require.Equal(t, 3, InsertionIndex(s, "a", bucket, 5))
	require.Equal(t, 3, InsertionIndex(s, "a", directory.Partition(s.List(), directory.Buckets[3]), 0))

	c := NewCoordinator(s, nil)
	c.StartDrag("a")
	_, err := c.DropOnBucket(directory.Buckets[1], InsertionIndex(s, "a", bucket, 1))
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c", "a", "d"}, order(s))
}
