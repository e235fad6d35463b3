// Package interval provides the half-open numeric range used by the
// range-based puzzle solutions, together with intersection and merging.
package interval

import (
	"fmt"
	"sort"
)

// Interval is a numeric range with an inclusive Start and exclusive End,
// i.e. [Start, End). An interval with Start == End is empty and contains
// no values. Intervals are plain values; operations return new intervals
// instead of mutating.
type Interval struct {
	Start uint64 // inclusive
	End   uint64 // exclusive
}

// New builds an interval [start, end). Callers are expected to pass
// start <= end; New does not reorder or validate.
func New(start, end uint64) Interval {
	return Interval{Start: start, End: end}
}

// Len returns the number of values covered by the interval.
func (iv Interval) Len() uint64 {
	return iv.End - iv.Start
}

// IsEmpty returns true if the interval contains no values.
func (iv Interval) IsEmpty() bool {
	return iv.Start == iv.End
}

// Intersect returns the overlapping sub-range of iv and other.
// Returns false if they do not overlap. Intervals that only touch at a
// boundary (iv.End == other.Start) do not overlap.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	overlap := Interval{
		Start: max(iv.Start, other.Start),
		End:   min(iv.End, other.End),
	}
	if overlap.Start < overlap.End {
		return overlap, true
	}

	return Interval{}, false
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// Merge coalesces overlapping intervals into a minimal sorted list that
// covers the same values. Touching intervals follow the same closed/open
// rule as Intersect and stay separate. The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	if len(intervals) < 2 {
		return append([]Interval{}, intervals...)
	}

	sorted := append([]Interval{}, intervals...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := make([]Interval, 0, len(sorted))
	acc := sorted[0]

	for _, iv := range sorted[1:] {
		if _, ok := acc.Intersect(iv); ok {
			acc.End = max(acc.End, iv.End)
			continue
		}

		merged = append(merged, acc)
		acc = iv
	}

	return append(merged, acc)
}
