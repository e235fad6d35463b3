// Package camelcards ranks the day 7 Camel Cards hands and totals the
// winnings: hands are ordered by type, then card by card, and each hand
// wins its bid times its rank.
package camelcards

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"advent2023/internal/scan"
)

// Card is one card of a hand. Rank runs from 2 up to 14 for the ace.
type Card struct {
	Label rune
	Rank  int
}

// NewCard builds a card from its input label.
func NewCard(label rune) (Card, error) {
	switch label {
	case 'A':
		return Card{Label: label, Rank: 14}, nil
	case 'K':
		return Card{Label: label, Rank: 13}, nil
	case 'Q':
		return Card{Label: label, Rank: 12}, nil
	case 'J':
		return Card{Label: label, Rank: 11}, nil
	case 'T':
		return Card{Label: label, Rank: 10}, nil
	}

	if label >= '2' && label <= '9' {
		return Card{Label: label, Rank: int(label - '0')}, nil
	}

	return Card{}, fmt.Errorf("invalid card label %q", label)
}

//go:generate go tool stringer -type=HandType -output=handtype_string.go

// HandType classifies a hand; higher values beat lower ones.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Hand is one input line: five cards, their classification, and the bid.
type Hand struct {
	Type  HandType
	Cards [5]Card
	Bid   int
}

// NewHand classifies five cards into a hand.
func NewHand(cards []Card, bid int) (Hand, error) {
	if len(cards) != 5 {
		return Hand{}, fmt.Errorf("expected 5 cards, got %d", len(cards))
	}

	hand := Hand{Bid: bid}
	copy(hand.Cards[:], cards)
	hand.Type = classify(hand.Cards)

	return hand, nil
}

func classify(cards [5]Card) HandType {
	rankCounts := map[int]int{}
	for _, card := range cards {
		rankCounts[card.Rank]++
	}

	counts := make([]int, 0, len(rankCounts))
	for _, count := range rankCounts {
		counts = append(counts, count)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	switch counts[0] {
	case 5:
		return FiveOfAKind
	case 4:
		return FourOfAKind
	case 3:
		if counts[1] == 2 {
			return FullHouse
		}

		return ThreeOfAKind
	case 2:
		if counts[1] == 2 {
			return TwoPair
		}

		return OnePair
	default:
		return HighCard
	}
}

// Beats reports whether h is the stronger hand: better type first, then
// the first differing card decides.
func (h Hand) Beats(other Hand) bool {
	if h.Type != other.Type {
		return h.Type > other.Type
	}

	for i := range h.Cards {
		if h.Cards[i].Rank != other.Cards[i].Rank {
			return h.Cards[i].Rank > other.Cards[i].Rank
		}
	}

	return false
}

// TotalWinnings sorts the hands from weakest to strongest and sums
// bid * rank, where the weakest hand has rank 1.
func TotalWinnings(hands []Hand) int {
	ordered := append([]Hand{}, hands...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[j].Beats(ordered[i])
	})

	total := 0
	for i, hand := range ordered {
		total += hand.Bid * (i + 1)
	}

	return total
}

// ParseHand parses a line like "32T3K 765".
func ParseHand(s string) (Hand, error) {
	var cards []Card

	var bidStr string

	for i, c := range s {
		if c == ' ' {
			bidStr = s[i+1:]
			break
		}

		card, err := NewCard(c)
		if err != nil {
			return Hand{}, err
		}

		cards = append(cards, card)
	}

	if bidStr == "" {
		return Hand{}, errors.New("expected cards and bid separated by a space")
	}

	bid, err := strconv.Atoi(bidStr)
	if err != nil {
		return Hand{}, fmt.Errorf("invalid bid %q", bidStr)
	}

	return NewHand(cards, bid)
}

// ParseHands reads one hand per input line.
func ParseHands(lines *scan.Lines) ([]Hand, error) {
	var hands []Hand

	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		hand, err := ParseHand(line.Text)
		if err != nil {
			return nil, line.Errorf("%v", err)
		}

		hands = append(hands, hand)
	}

	if err := lines.Err(); err != nil {
		return nil, err
	}

	return hands, nil
}
