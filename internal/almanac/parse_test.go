package almanac

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2023/internal/interval"
	"advent2023/internal/scan"
)

const testInput = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func parseTestInput(t *testing.T) *Almanac {
	t.Helper()

	a, err := Parse(scan.NewLinesFromString(testInput))
	require.NoError(t, err)

	return a
}

func TestParse(t *testing.T) {
	a := parseTestInput(t)

	if diff := cmp.Diff([]uint64{79, 14, 55, 13}, a.Seeds); diff != "" {
		t.Errorf("seeds mismatch (-want +got):\n%s", diff)
	}

	stages := a.Pipeline.Stages()
	require.Len(t, stages, 7)

	wantNames := []string{
		"seed-to-soil",
		"soil-to-fertilizer",
		"fertilizer-to-water",
		"water-to-light",
		"light-to-temperature",
		"temperature-to-humidity",
		"humidity-to-location",
	}
	for i, stage := range stages {
		assert.Equal(t, wantNames[i], stage.Name())
	}

	// The last block has no trailing blank line; both rules must be there.
	assert.Len(t, stages[6].Mappings(), 2)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty input", "", "unexpected end of input"},
		{"no number list", "seeds", "expected header with number list"},
		{"wrong header", "foods: 1 2 3", `expected header "seeds"`},
		{"bad seed number", "seeds: 1 two 3", `LINE 0: invalid number "two"`},
		{"missing blank line", "seeds: 1 2\nseed-to-soil map:", "LINE 1: expected empty line"},
		{
			"bad map header",
			"seeds: 1 2\n\nseed-to-soil\n50 98 2",
			`LINE 2: expected string ending in " map:"`,
		},
		{
			"wrong rule arity",
			"seeds: 1 2\n\nseed-to-soil map:\n50 98",
			"LINE 3: expected 3 numbers, got 2",
		},
		{
			"overlapping rules",
			"seeds: 1 2\n\nseed-to-soil map:\n100 0 10\n200 5 10",
			"overlapping source ranges",
		},
		{
			"overflowing rule",
			"seeds: 1 2\n\nseed-to-soil map:\n0 18446744073709551615 2",
			"overflows uint64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(scan.NewLinesFromString(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSeedRanges(t *testing.T) {
	a := parseTestInput(t)

	ranges, err := a.SeedRanges()
	require.NoError(t, err)
	assert.Equal(t, []interval.Interval{
		interval.New(79, 93),
		interval.New(55, 68),
	}, ranges)
}

func TestSeedRangesOddCount(t *testing.T) {
	a := &Almanac{Seeds: []uint64{79, 14, 55}}

	_, err := a.SeedRanges()
	assert.ErrorIs(t, err, ErrOddSeedCount)
}

func TestSeedRangesOverflow(t *testing.T) {
	a := &Almanac{Seeds: []uint64{18446744073709551615, 2}}

	_, err := a.SeedRanges()
	assert.ErrorIs(t, err, ErrRangeOverflow)
}
