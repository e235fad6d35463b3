package almanac

import (
	"errors"
	"math"

	"advent2023/internal/interval"
)

// ErrNoSeedRanges is returned when the pipeline is asked for a result
// with nothing to map.
var ErrNoSeedRanges = errors.New("no seed ranges to map")

// Pipeline is the full ordered chain of translation stages, from seed
// numbers down to location numbers.
type Pipeline struct {
	stages []*Stage
}

// NewPipeline builds a pipeline that applies the given stages in order.
func NewPipeline(stages []*Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Stages returns the pipeline's stages in application order.
func (p *Pipeline) Stages() []*Stage {
	return p.stages
}

// FinalMappings pushes each seed value through every stage and returns
// the resulting values in input order.
func (p *Pipeline) FinalMappings(seeds []uint64) []uint64 {
	mapped := append([]uint64{}, seeds...)

	for _, stage := range p.stages {
		for i, v := range mapped {
			mapped[i] = stage.MapValue(v)
		}
	}

	return mapped
}

// LowestFinalMapping pushes each seed range through every stage and
// returns the smallest value reachable in the final intervals. The
// interval set is merged between stages so repeated splitting cannot
// grow it without bound.
func (p *Pipeline) LowestFinalMapping(seedRanges []interval.Interval) (uint64, error) {
	if len(seedRanges) == 0 {
		return 0, ErrNoSeedRanges
	}

	lowest := uint64(math.MaxUint64)

	for _, seedRange := range seedRanges {
		current := []interval.Interval{seedRange}

		for _, stage := range p.stages {
			var mapped []interval.Interval
			for _, iv := range current {
				mapped = append(mapped, stage.MapRange(iv)...)
			}

			current = interval.Merge(mapped)
		}

		for _, iv := range current {
			lowest = min(lowest, iv.Start)
		}
	}

	return lowest, nil
}
