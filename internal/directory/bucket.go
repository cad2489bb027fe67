package directory

import "fmt"

// Range is an inclusive age interval.
type Range struct {
	Lower int
	Upper int
}

// Buckets are the four fixed age groups, in display order.
var Buckets = [4]Range{
	{Lower: 1, Upper: 18},
	{Lower: 19, Upper: 24},
	{Lower: 25, Upper: 45},
	{Lower: 46, Upper: 100},
}

func (r Range) Contains(age int) bool {
	return age >= r.Lower && age <= r.Upper
}

// Clamp pulls age into the range.
func (r Range) Clamp(age int) int {
	return max(r.Lower, min(age, r.Upper))
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lower, r.Upper)
}

// Title is the column heading for the bucket.
func (r Range) Title() string {
	return "Age " + r.String()
}

// BucketFor returns the index into Buckets holding age.
func BucketFor(age int) (int, bool) {
	for i, b := range Buckets {
		if b.Contains(age) {
			return i, true
		}
	}
	return -1, false
}

// Partition keeps the records of seq whose age lies in r, in input order.
func Partition(seq []Person, r Range) []Person {
	out := make([]Person, 0)
	for _, p := range seq {
		if r.Contains(p.Age) {
			out = append(out, p)
		}
	}
	return out
}

// PartitionAll splits seq across every bucket.
func PartitionAll(seq []Person) [4][]Person {
	var out [4][]Person
	for i, b := range Buckets {
		out[i] = Partition(seq, b)
	}
	return out
}

// Hidden returns the records that no bucket displays.
func Hidden(seq []Person) []Person {
	var out []Person
	for _, p := range seq {
		if _, ok := BucketFor(p.Age); !ok {
			out = append(out, p)
		}
	}
	return out
}
