// Package network walks the day 8 desert map: a cycled list of
// left/right instructions over a graph of labelled nodes.
package network

import (
	"errors"
	"fmt"
	"strings"

	"advent2023/internal/scan"
)

// ErrUnknownNode is returned when the walk reaches a label the map never
// defined.
var ErrUnknownNode = errors.New("node not found in network")

// Direction is one step instruction.
type Direction int

const (
	Left Direction = iota
	Right
)

// ParseDirection converts an instruction character.
func ParseDirection(c rune) (Direction, error) {
	switch c {
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	default:
		return 0, fmt.Errorf("invalid direction %q", c)
	}
}

// Edges are a node's left and right successors.
type Edges struct {
	Left  string
	Right string
}

func (e Edges) next(dir Direction) string {
	if dir == Left {
		return e.Left
	}

	return e.Right
}

// Network maps node labels to their edges.
type Network map[string]Edges

// StepsBetween walks from start, following the instructions and starting
// over at their end, until terminal is reached. Returns the number of
// steps taken.
func (n Network) StepsBetween(start, terminal string, directions []Direction) (int, error) {
	if len(directions) == 0 {
		return 0, errors.New("no directions to follow")
	}

	current := start
	steps := 0

	for current != terminal {
		edges, ok := n[current]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownNode, current)
		}

		current = edges.next(directions[steps%len(directions)])
		steps++
	}

	return steps, nil
}

// Parse reads the instruction line, a blank line, then one
// "AAA = (BBB, CCC)" line per node.
func Parse(lines *scan.Lines) (Network, []Direction, error) {
	first, ok := lines.Next()
	if !ok {
		return nil, nil, errors.New("unexpected empty input")
	}

	var directions []Direction

	for _, c := range first.Text {
		dir, err := ParseDirection(c)
		if err != nil {
			return nil, nil, first.Errorf("%v", err)
		}

		directions = append(directions, dir)
	}

	if err := lines.ExpectEmpty(); err != nil {
		return nil, nil, err
	}

	network := Network{}

	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		label, edges, err := parseNode(line.Text)
		if err != nil {
			return nil, nil, line.Errorf("%v", err)
		}

		network[label] = edges
	}

	if err := lines.Err(); err != nil {
		return nil, nil, err
	}

	return network, directions, nil
}

func parseNode(s string) (string, Edges, error) {
	label, edgesStr, found := strings.Cut(s, "=")
	if !found {
		return "", Edges{}, errors.New("missing '=' between label and edges")
	}

	edgesStr = strings.TrimSpace(edgesStr)

	edgesStr, ok := strings.CutPrefix(edgesStr, "(")
	if !ok {
		return "", Edges{}, errors.New("expected edges to start with '('")
	}

	edgesStr, ok = strings.CutSuffix(edgesStr, ")")
	if !ok {
		return "", Edges{}, errors.New("expected edges to end with ')'")
	}

	left, right, found := strings.Cut(edgesStr, ",")
	if !found {
		return "", Edges{}, errors.New("missing ',' between edges")
	}

	return strings.TrimSpace(label), Edges{
		Left:  strings.TrimSpace(left),
		Right: strings.TrimSpace(right),
	}, nil
}
