package camelcards

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2023/internal/scan"
)

const testInput = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483`

func mustHand(t *testing.T, line string) Hand {
	t.Helper()

	hand, err := ParseHand(line)
	require.NoError(t, err)

	return hand
}

func TestNewCard(t *testing.T) {
	tests := []struct {
		label rune
		rank  int
	}{
		{'A', 14}, {'K', 13}, {'Q', 12}, {'J', 11}, {'T', 10}, {'9', 9}, {'2', 2},
	}

	for _, tt := range tests {
		card, err := NewCard(tt.label)
		require.NoError(t, err)
		assert.Equal(t, tt.rank, card.Rank, "label %c", tt.label)
		assert.Equal(t, tt.label, card.Label)
	}

	for _, label := range []rune{'1', '0', 'X', 'a'} {
		_, err := NewCard(label)
		assert.Error(t, err, "label %c", label)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		cards string
		want  HandType
	}{
		{"AAAAA 1", FiveOfAKind},
		{"AA8AA 1", FourOfAKind},
		{"23332 1", FullHouse},
		{"TTT98 1", ThreeOfAKind},
		{"23432 1", TwoPair},
		{"A23A4 1", OnePair},
		{"23456 1", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, mustHand(t, tt.cards).Type)
		})
	}
}

func TestParseHands(t *testing.T) {
	hands, err := ParseHands(scan.NewLinesFromString(testInput))
	require.NoError(t, err)
	require.Len(t, hands, 5)

	assert.Equal(t, OnePair, hands[0].Type)
	assert.Equal(t, 765, hands[0].Bid)
	assert.Equal(t, ThreeOfAKind, hands[1].Type)
	assert.Equal(t, TwoPair, hands[2].Type)
	assert.Equal(t, TwoPair, hands[3].Type)
	assert.Equal(t, ThreeOfAKind, hands[4].Type)
}

func TestParseHandErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{"no space", "32T3K", "separated by a space"},
		{"bad label", "32X3K 765", "invalid card label"},
		{"four cards", "32T3 765", "expected 5 cards, got 4"},
		{"bad bid", "32T3K abc", `invalid bid "abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHand(tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBeats(t *testing.T) {
	fullHouse := mustHand(t, "AAAKK 1")
	threeOfAKind := mustHand(t, "AAA2J 1")

	spew.Dump(fullHouse, threeOfAKind)

	assert.True(t, fullHouse.Beats(threeOfAKind))
	assert.False(t, threeOfAKind.Beats(fullHouse))

	// Same type: the first differing card decides.
	assert.True(t, mustHand(t, "KK677 1").Beats(mustHand(t, "KTJJT 1")))
	assert.True(t, mustHand(t, "33332 1").Beats(mustHand(t, "2AAAA 1")))

	// A hand never beats itself.
	assert.False(t, fullHouse.Beats(fullHouse))
}

func TestTotalWinnings(t *testing.T) {
	hands, err := ParseHands(scan.NewLinesFromString(testInput))
	require.NoError(t, err)

	assert.Equal(t, 6440, TotalWinnings(hands))
}
