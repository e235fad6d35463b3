package network

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2023/internal/scan"
)

var walkTests = []struct {
	name             string
	input            string
	wantNetwork      Network
	wantInstructions []Direction
	wantSteps        int
}{
	{
		name: "two steps right then left",
		input: `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)`,
		wantNetwork: Network{
			"AAA": {Left: "BBB", Right: "CCC"},
			"BBB": {Left: "DDD", Right: "EEE"},
			"CCC": {Left: "ZZZ", Right: "GGG"},
			"DDD": {Left: "DDD", Right: "DDD"},
			"EEE": {Left: "EEE", Right: "EEE"},
			"GGG": {Left: "GGG", Right: "GGG"},
			"ZZZ": {Left: "ZZZ", Right: "ZZZ"},
		},
		wantInstructions: []Direction{Right, Left},
		wantSteps:        2,
	},
	{
		name: "instructions repeat",
		input: `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)`,
		wantNetwork: Network{
			"AAA": {Left: "BBB", Right: "BBB"},
			"BBB": {Left: "AAA", Right: "ZZZ"},
			"ZZZ": {Left: "ZZZ", Right: "ZZZ"},
		},
		wantInstructions: []Direction{Left, Left, Right},
		wantSteps:        6,
	},
}

func TestParse(t *testing.T) {
	for _, tt := range walkTests {
		t.Run(tt.name, func(t *testing.T) {
			network, directions, err := Parse(scan.NewLinesFromString(tt.input))
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantNetwork, network); diff != "" {
				t.Errorf("network mismatch (-want +got):\n%s", diff)
			}

			assert.Equal(t, tt.wantInstructions, directions)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "unexpected empty input"},
		{"bad direction", "LX\n\nAAA = (BBB, CCC)", `invalid direction 'X'`},
		{"missing blank line", "LR\nAAA = (BBB, CCC)", "expected empty line"},
		{"missing equals", "LR\n\nAAA (BBB, CCC)", "missing '='"},
		{"missing open paren", "LR\n\nAAA = BBB, CCC)", "start with '('"},
		{"missing close paren", "LR\n\nAAA = (BBB, CCC", "end with ')'"},
		{"missing comma", "LR\n\nAAA = (BBB CCC)", "missing ','"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(scan.NewLinesFromString(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStepsBetween(t *testing.T) {
	for _, tt := range walkTests {
		t.Run(tt.name, func(t *testing.T) {
			network, directions, err := Parse(scan.NewLinesFromString(tt.input))
			require.NoError(t, err)

			steps, err := network.StepsBetween("AAA", "ZZZ", directions)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSteps, steps)
		})
	}
}

func TestStepsBetweenUnknownNode(t *testing.T) {
	network := Network{"AAA": {Left: "BBB", Right: "BBB"}}

	_, err := network.StepsBetween("AAA", "ZZZ", []Direction{Left})
	require.ErrorIs(t, err, ErrUnknownNode)
	assert.Contains(t, err.Error(), `"BBB"`)
}

func TestStepsBetweenAlreadyThere(t *testing.T) {
	network := Network{"ZZZ": {Left: "ZZZ", Right: "ZZZ"}}

	steps, err := network.StepsBetween("ZZZ", "ZZZ", []Direction{Left})
	require.NoError(t, err)
	assert.Zero(t, steps)
}
