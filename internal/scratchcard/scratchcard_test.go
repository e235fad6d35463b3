package scratchcard

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2023/internal/scan"
)

var exampleLines = []string{
	"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53",
	"Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19",
	"Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1",
	"Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83",
	"Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36",
	"Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11",
}

func TestParseCard(t *testing.T) {
	card, err := ParseCard(exampleLines[0])
	require.NoError(t, err)

	want := Card{
		Number:  1,
		Winning: map[int]bool{41: true, 48: true, 83: true, 86: true, 17: true},
		Have:    []int{83, 86, 6, 31, 17, 9, 48, 53},
	}
	if diff := cmp.Diff(want, card); diff != "" {
		t.Errorf("ParseCard mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCardErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{"no colon", "Card 1 41 48", `expected ":"`},
		{"wrong header", "Crad 1: 41 | 48", `expected "Card <n>"`},
		{"bad card number", "Card one: 41 | 48", "invalid card number"},
		{"no separator", "Card 1: 41 48", `expected "|"`},
		{"bad number", "Card 1: 41 x | 48", `invalid number "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCard(tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPoints(t *testing.T) {
	wantPoints := []int{8, 2, 2, 1, 0, 0}

	for i, line := range exampleLines {
		card, err := ParseCard(line)
		require.NoError(t, err)

		assert.Equal(t, wantPoints[i], card.Points(), "card %d", card.Number)
	}
}

func TestTotalPointsAndCards(t *testing.T) {
	input := strings.Join(exampleLines, "\n")

	points, cards, err := TotalPointsAndCards(scan.NewLinesFromString(input))
	require.NoError(t, err)
	assert.Equal(t, 13, points)
	assert.Equal(t, 30, cards)
}

func TestTotalPointsAndCardsParseFailure(t *testing.T) {
	_, _, err := TotalPointsAndCards(scan.NewLinesFromString("garbage"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LINE 0")
}
