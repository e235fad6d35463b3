package almanac

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"advent2023/internal/interval"
	"advent2023/internal/scan"
)

// ErrOddSeedCount is returned by SeedRanges when the seeds line cannot be
// read as (start, length) pairs.
var ErrOddSeedCount = errors.New("seed numbers do not form (start, length) pairs")

const stageHeaderSuffix = " map:"

// Almanac is the fully parsed puzzle input: the seed numbers and the
// mapping pipeline built from the "X-to-Y map:" blocks.
type Almanac struct {
	Seeds    []uint64
	Pipeline *Pipeline
}

// SeedRanges reads the seed numbers as (start, length) pairs and returns
// the corresponding intervals.
func (a *Almanac) SeedRanges() ([]interval.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d numbers", ErrOddSeedCount, len(a.Seeds))
	}

	ranges := make([]interval.Interval, 0, len(a.Seeds)/2)

	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if start > math.MaxUint64-length {
			return nil, fmt.Errorf("%w: seed %d + length %d", ErrRangeOverflow, start, length)
		}

		ranges = append(ranges, interval.New(start, start+length))
	}

	return ranges, nil
}

// Parse reads the whole almanac input: a "seeds:" line, a blank line, then
// one "<name> map:" block per stage, each a run of 3-number lines ended by
// a blank line or end of input.
func Parse(lines *scan.Lines) (*Almanac, error) {
	line, ok := lines.Next()
	if !ok {
		return nil, errors.New("unexpected end of input, expected seeds line")
	}

	header, numberList, found := strings.Cut(line.Text, ": ")
	if !found {
		return nil, line.Errorf("expected header with number list, got %q", line.Text)
	}

	if header != "seeds" {
		return nil, line.Errorf("expected header %q, got %q", "seeds", header)
	}

	seeds, err := parseNumberList(numberList)
	if err != nil {
		return nil, line.Errorf("%v", err)
	}

	if err := lines.ExpectEmpty(); err != nil {
		return nil, err
	}

	stages, err := parseStages(lines)
	if err != nil {
		return nil, err
	}

	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return &Almanac{Seeds: seeds, Pipeline: NewPipeline(stages)}, nil
}

func parseStages(lines *scan.Lines) ([]*Stage, error) {
	var stages []*Stage

	for {
		name, err := parseStageName(lines)
		if err != nil {
			return nil, err
		}

		var rules []RangeMapping

		for {
			rule, ok, err := parseRule(lines)
			if err != nil {
				return nil, err
			}

			if !ok {
				break
			}

			rules = append(rules, rule)
		}

		stage, err := NewStage(name, rules)
		if err != nil {
			return nil, err
		}

		stages = append(stages, stage)

		if _, ok := lines.Peek(); !ok {
			break
		}
	}

	return stages, nil
}

func parseStageName(lines *scan.Lines) (string, error) {
	line, ok := lines.Next()
	if !ok {
		return "", errors.New("unexpected end of input, expected mapping header")
	}

	if !strings.HasSuffix(line.Text, stageHeaderSuffix) {
		return "", line.Errorf("expected string ending in %q, got %q", stageHeaderSuffix, line.Text)
	}

	return strings.TrimSuffix(line.Text, stageHeaderSuffix), nil
}

// parseRule reads one (dest, source, length) line. Returns ok=false at a
// blank line or end of input, which terminates the current stage block.
func parseRule(lines *scan.Lines) (RangeMapping, bool, error) {
	line, ok := lines.Next()
	if !ok || line.IsEmpty() {
		return RangeMapping{}, false, nil
	}

	numbers, err := parseNumberList(line.Text)
	if err != nil {
		return RangeMapping{}, false, line.Errorf("%v", err)
	}

	if len(numbers) != 3 {
		return RangeMapping{}, false, line.Errorf("expected 3 numbers, got %d", len(numbers))
	}

	rule, err := NewRangeMapping(numbers[0], numbers[1], numbers[2])
	if err != nil {
		return RangeMapping{}, false, line.Errorf("%v", err)
	}

	return rule, true, nil
}

func parseNumberList(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	numbers := make([]uint64, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}
