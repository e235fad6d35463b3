// Package almanac implements the seed-to-location remapping engine from
// day 5: piecewise range mappings, stages, and the stage pipeline.
//
// Key types:
//   - RangeMapping: one (dest, source, length) translation rule
//   - Stage: a named set of non-overlapping rules, e.g. "seed-to-soil"
//   - Pipeline: the ordered chain of stages down to "humidity-to-location"
//
// Values not covered by any rule map to themselves; that pass-through is
// part of the puzzle's contract, not a fallback.
package almanac
