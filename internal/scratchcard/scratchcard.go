// Package scratchcard scores the day 4 scratchcards: points won from
// matching numbers, and the card-copy cascade where each match wins a
// copy of the following cards.
package scratchcard

import (
	"fmt"
	"strconv"
	"strings"

	"advent2023/internal/scan"
)

// Card is one scratchcard: its number, the winning numbers behind the
// left column, and the numbers you have on the right.
type Card struct {
	Number  int
	Winning map[int]bool
	Have    []int
}

// MatchCount returns how many of the card's own numbers are winning
// numbers.
func (c Card) MatchCount() int {
	count := 0

	for _, n := range c.Have {
		if c.Winning[n] {
			count++
		}
	}

	return count
}

// Points returns the card's part 1 score: 1 for the first match, doubled
// for every further one.
func (c Card) Points() int {
	points := 0

	for range c.MatchCount() {
		if points == 0 {
			points = 1
		} else {
			points *= 2
		}
	}

	return points
}

// ParseCard parses a line like
// "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func ParseCard(s string) (Card, error) {
	header, numbers, found := strings.Cut(s, ":")
	if !found {
		return Card{}, fmt.Errorf("expected %q after card number", ":")
	}

	headerFields := strings.Fields(header)
	if len(headerFields) != 2 || headerFields[0] != "Card" {
		return Card{}, fmt.Errorf("expected %q at start of line, got %q", "Card <n>", header)
	}

	number, err := strconv.Atoi(headerFields[1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card number %q", headerFields[1])
	}

	winningStr, haveStr, found := strings.Cut(numbers, "|")
	if !found {
		return Card{}, fmt.Errorf("expected %q separating winning and card numbers", "|")
	}

	winningList, err := parseNumberList(winningStr)
	if err != nil {
		return Card{}, err
	}

	have, err := parseNumberList(haveStr)
	if err != nil {
		return Card{}, err
	}

	winning := make(map[int]bool, len(winningList))
	for _, n := range winningList {
		winning[n] = true
	}

	return Card{Number: number, Winning: winning, Have: have}, nil
}

func parseNumberList(s string) ([]int, error) {
	fields := strings.Fields(s)
	numbers := make([]int, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}

// TotalPointsAndCards reads every card line and returns the part 1 point
// total plus the part 2 count of cards after the copy cascade: winning n
// matches on a card wins one copy of each of the next n cards, and copies
// win more copies.
func TotalPointsAndCards(lines *scan.Lines) (points, totalCards int, err error) {
	copiesWon := map[int]int{}

	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		card, err := ParseCard(line.Text)
		if err != nil {
			return 0, 0, line.Errorf("%v", err)
		}

		copies := copiesWon[card.Number] + 1
		matches := card.MatchCount()

		for i := 1; i <= matches; i++ {
			copiesWon[card.Number+i] += copies
		}

		totalCards += copies
		points += card.Points()
	}

	if err := lines.Err(); err != nil {
		return 0, 0, err
	}

	return points, totalCards, nil
}
