package directory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	var seq []Person
	for age := -2; age <= 103; age++ {
		seq = append(seq, Person{ID: string(rune('a' + (age+2)%26)), Age: age})
	}
	parts := PartitionAll(seq)
	for _, p := range seq {
		hits := 0
		for _, bucket := range parts {
			for _, q := range bucket {
				if q.Age == p.Age {
					hits++
				}
			}
		}
		if p.Age >= 1 && p.Age <= 100 {
			require.Equal(t, 1, hits, "age %d", p.Age)
		} else {
			require.Equal(t, 0, hits, "age %d", p.Age)
		}
	}
	require.Len(t, Hidden(seq), 6)
}

func TestPartitionPreservesOrder(t *testing.T) {
	seq := []Person{{ID: "x", Age: 30}, {ID: "y", Age: 10}, {ID: "z", Age: 25}}
	require.Equal(t, []string{"x", "z"}, ids(Partition(seq, Buckets[2])))
	require.Empty(t, Partition(seq, Buckets[3]))
}

func TestRangeClampAndLabels(t *testing.T) {
	r := Buckets[1]
	require.Equal(t, 19, r.Clamp(16))
	require.Equal(t, 20, r.Clamp(20))
	require.Equal(t, 24, r.Clamp(70))
	require.Equal(t, "19-24", r.String())
	require.Equal(t, "Age 19-24", r.Title())

	idx, ok := BucketFor(46)
	require.True(t, ok)
	require.Equal(t, 3, idx)
	_, ok = BucketFor(0)
	require.False(t, ok)
}

func TestSuggestFindsClosestName(t *testing.T) {
	people := []Person{{Name: "Person 1"}, {Name: "Bob Smith"}, {Name: "Alice"}}
	got, ok := Suggest(people, "alcie", 3)
	require.True(t, ok)
	require.Equal(t, "Alice", got)

	got, ok = Suggest(people, "bbo", 2)
	require.True(t, ok)
	require.Equal(t, "Bob Smith", got)

	_, ok = Suggest(people, "zzzzzzzz", 2)
	require.False(t, ok)
	_, ok = Suggest(people, "alice", 0)
	require.False(t, ok)
}
