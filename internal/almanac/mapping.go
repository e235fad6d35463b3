package almanac

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"advent2023/internal/interval"
)

var (
	ErrRangeOverflow     = errors.New("range endpoint overflows uint64")
	ErrOverlappingRanges = errors.New("overlapping source ranges")
)

// RangeMapping translates the source interval onto a destination interval
// of the same length. Values keep their offset within the range.
type RangeMapping struct {
	source interval.Interval
	dest   interval.Interval
}

// NewRangeMapping builds a rule from the input's (destStart, sourceStart,
// length) triple. Fails if either endpoint overflows uint64.
func NewRangeMapping(destStart, sourceStart, length uint64) (RangeMapping, error) {
	if sourceStart > math.MaxUint64-length {
		return RangeMapping{}, fmt.Errorf("%w: source %d + length %d", ErrRangeOverflow, sourceStart, length)
	}

	if destStart > math.MaxUint64-length {
		return RangeMapping{}, fmt.Errorf("%w: dest %d + length %d", ErrRangeOverflow, destStart, length)
	}

	return RangeMapping{
		source: interval.New(sourceStart, sourceStart+length),
		dest:   interval.New(destStart, destStart+length),
	}, nil
}

// Source returns the rule's source interval.
func (m RangeMapping) Source() interval.Interval {
	return m.source
}

// Dest returns the rule's destination interval.
func (m RangeMapping) Dest() interval.Interval {
	return m.dest
}

// MapValue translates a single value, or returns false if the value falls
// outside the source range.
func (m RangeMapping) MapValue(v uint64) (uint64, bool) {
	if v < m.source.Start || v >= m.source.End {
		return 0, false
	}

	return m.dest.Start + (v - m.source.Start), true
}

// Stage is one named translation layer, e.g. "seed-to-soil". Its rules
// are sorted by source start and never overlap.
type Stage struct {
	name     string
	mappings []RangeMapping
}

// NewStage sorts the rules by source interval and validates that no two
// source intervals overlap. The name is display-only.
func NewStage(name string, mappings []RangeMapping) (*Stage, error) {
	sorted := append([]RangeMapping{}, mappings...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].source.Start < sorted[j].source.Start
	})

	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]
		if curr.source.Start < prev.source.End {
			return nil, fmt.Errorf("%w in %q: %s begins before %s ends",
				ErrOverlappingRanges, name, curr.source, prev.source)
		}
	}

	return &Stage{name: name, mappings: sorted}, nil
}

// Name returns the stage's display name.
func (s *Stage) Name() string {
	return s.name
}

// Mappings returns the stage's rules in source order.
func (s *Stage) Mappings() []RangeMapping {
	return s.mappings
}

// MapValue translates a single value through the stage. Values outside
// every rule's source range map to themselves.
func (s *Stage) MapValue(v uint64) uint64 {
	for _, m := range s.mappings {
		if dest, ok := m.MapValue(v); ok {
			return dest
		}
	}

	return v
}

// MapRange translates an input interval through the stage, splitting it
// across rule boundaries as needed. Sub-ranges covered by a rule are
// shifted into destination space; uncovered sub-ranges pass through
// unchanged. The returned intervals cover exactly the input's values,
// with no gap and no duplication, in no particular order.
func (s *Stage) MapRange(in interval.Interval) []interval.Interval {
	unmapped := []interval.Interval{in}

	var out []interval.Interval

	for _, m := range s.mappings {
		next := make([]interval.Interval, 0, len(unmapped))

		for _, piece := range unmapped {
			overlap, ok := piece.Intersect(m.source)
			if !ok {
				next = append(next, piece)
				continue
			}

			offset := overlap.Start - m.source.Start
			out = append(out, interval.New(m.dest.Start+offset, m.dest.Start+offset+overlap.Len()))

			// Anything the rule did not cover goes back into the pool
			// for the remaining rules to look at.
			if lead := interval.New(piece.Start, overlap.Start); !lead.IsEmpty() {
				next = append(next, lead)
			}

			if trail := interval.New(overlap.End, piece.End); !trail.IsEmpty() {
				next = append(next, trail)
			}
		}

		unmapped = next
	}

	return append(out, unmapped...)
}
