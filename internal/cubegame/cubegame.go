// Package cubegame scores the cube-drawing games of day 2: which games
// could have been played with a given bag of colored cubes.
package cubegame

import (
	"fmt"
	"strconv"
	"strings"

	"advent2023/internal/scan"
)

// Bag is what the elf claims to have loaded: the maximum number of cubes
// of each color available during a game.
type Bag struct {
	Red   int
	Green int
	Blue  int
}

// Draw is one handful of cubes shown during a game. Colors not shown are
// zero.
type Draw struct {
	Red   int
	Green int
	Blue  int
}

// Game is one input line: a numbered game and its sequence of draws.
type Game struct {
	Number int
	Draws  []Draw
}

// IsPossibleWith reports whether every draw of the game fits in the bag.
func (g Game) IsPossibleWith(bag Bag) bool {
	for _, draw := range g.Draws {
		if draw.Red > bag.Red || draw.Green > bag.Green || draw.Blue > bag.Blue {
			return false
		}
	}

	return true
}

// ParseGame parses a line like
// "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
// Naming a color twice within one draw is an error.
func ParseGame(s string) (Game, error) {
	header, drawList, found := strings.Cut(s, ": ")
	if !found {
		return Game{}, fmt.Errorf("expected %q separating game number and draws", ": ")
	}

	numberStr, ok := strings.CutPrefix(header, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("expected header starting with %q, got %q", "Game ", header)
	}

	number, err := strconv.Atoi(numberStr)
	if err != nil {
		return Game{}, fmt.Errorf("invalid game number %q", numberStr)
	}

	game := Game{Number: number}

	for drawIdx, drawStr := range strings.Split(drawList, "; ") {
		draw, err := parseDraw(drawStr)
		if err != nil {
			return Game{}, fmt.Errorf("game %d, draw %d: %w", number, drawIdx+1, err)
		}

		game.Draws = append(game.Draws, draw)
	}

	return game, nil
}

func parseDraw(s string) (Draw, error) {
	var draw Draw

	seen := map[string]bool{}

	for _, part := range strings.Split(s, ", ") {
		countStr, color, found := strings.Cut(part, " ")
		if !found {
			return Draw{}, fmt.Errorf("expected a space separating count and color in %q", part)
		}

		count, err := strconv.Atoi(countStr)
		if err != nil {
			return Draw{}, fmt.Errorf("invalid cube count %q for color %s", countStr, color)
		}

		if seen[color] {
			return Draw{}, fmt.Errorf("color %s shown twice in one draw", color)
		}
		seen[color] = true

		switch color {
		case "red":
			draw.Red = count
		case "green":
			draw.Green = count
		case "blue":
			draw.Blue = count
		default:
			return Draw{}, fmt.Errorf("expected color red, green or blue, got %q", color)
		}
	}

	return draw, nil
}

// PossibleGameSum adds up the numbers of all games playable with the bag.
func PossibleGameSum(lines *scan.Lines, bag Bag) (int, error) {
	sum := 0

	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		game, err := ParseGame(line.Text)
		if err != nil {
			return 0, line.Errorf("%v", err)
		}

		if game.IsPossibleWith(bag) {
			sum += game.Number
		}
	}

	if err := lines.Err(); err != nil {
		return 0, err
	}

	return sum, nil
}
