// Package pipemaze walks the day 10 pipe loop. From the start tile the
// loop is followed in every possible direction at once; where two walks
// meet (or one comes all the way around) is the farthest tile, at half
// the loop length.
package pipemaze

import (
	"errors"
	"fmt"

	"advent2023/internal/scan"
)

// ErrNoLoop is returned when no pipe loop passes through the start tile.
var ErrNoLoop = errors.New("no loop through the start tile")

// Direction is a unit move on the grid.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

func (d Direction) moveFrom(x, y int) (int, int) {
	switch d {
	case Up:
		return x, y - 1
	case Down:
		return x, y + 1
	case Left:
		return x - 1, y
	default:
		return x + 1, y
	}
}

// Tile is one grid cell.
type Tile int

const (
	Ground Tile = iota
	Start
	Vertical
	Horizontal
	NorthAndEast
	NorthAndWest
	SouthAndEast
	SouthAndWest
)

// ParseTile converts an input character to its tile.
func ParseTile(c rune) (Tile, error) {
	switch c {
	case '.':
		return Ground, nil
	case 'S':
		return Start, nil
	case '|':
		return Vertical, nil
	case '-':
		return Horizontal, nil
	case 'L':
		return NorthAndEast, nil
	case 'J':
		return NorthAndWest, nil
	case 'F':
		return SouthAndEast, nil
	case '7':
		return SouthAndWest, nil
	default:
		return 0, fmt.Errorf("invalid tile %q", c)
	}
}

// nextDir returns where the pipe leads when entered moving in dir.
// Returns false when the tile does not connect to that entry.
func (t Tile) nextDir(dir Direction) (Direction, bool) {
	type entry struct {
		dir  Direction
		tile Tile
	}

	switch (entry{dir, t}) {
	case entry{Up, Vertical}:
		return Up, true
	case entry{Down, Vertical}:
		return Down, true
	case entry{Left, Horizontal}:
		return Left, true
	case entry{Right, Horizontal}:
		return Right, true
	case entry{Down, NorthAndEast}:
		return Right, true
	case entry{Left, NorthAndEast}:
		return Up, true
	case entry{Down, NorthAndWest}:
		return Left, true
	case entry{Right, NorthAndWest}:
		return Up, true
	case entry{Up, SouthAndEast}:
		return Right, true
	case entry{Left, SouthAndEast}:
		return Down, true
	case entry{Up, SouthAndWest}:
		return Left, true
	case entry{Right, SouthAndWest}:
		return Down, true
	default:
		return 0, false
	}
}

// Point is a grid coordinate.
type Point struct {
	X int
	Y int
}

// TileMap is the parsed maze: a rectangular tile grid and the start
// tile's position.
type TileMap struct {
	tiles  [][]Tile
	width  int
	height int
	start  Point
}

// NewTileMap validates that the grid is rectangular and non-empty and
// that the start position lies inside it.
func NewTileMap(tiles [][]Tile, start Point) (*TileMap, error) {
	if len(tiles) == 0 {
		return nil, errors.New("map cannot be empty")
	}

	width := len(tiles[0])

	for _, row := range tiles {
		if len(row) == 0 {
			return nil, errors.New("row cannot be empty")
		}

		if len(row) != width {
			return nil, errors.New("all rows in map must be the same length")
		}
	}

	if start.Y < 0 || start.Y >= len(tiles) {
		return nil, errors.New("start tile must be inside the map height")
	}

	if start.X < 0 || start.X >= width {
		return nil, errors.New("start tile must be inside the map width")
	}

	return &TileMap{tiles: tiles, width: width, height: len(tiles), start: start}, nil
}

// Start returns the start tile's position.
func (m *TileMap) Start() Point {
	return m.start
}

func (m *TileMap) tileAt(p Point) (Tile, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= m.width || p.Y >= m.height {
		return 0, false
	}

	return m.tiles[p.Y][p.X], true
}

// walk is one active front following the pipe away from the start.
type walk struct {
	pos     Point
	lastDir Direction
	steps   int
}

// StepsToFarthestTile returns the distance of the loop tile farthest
// from the start, i.e. half the loop length.
func (m *TileMap) StepsToFarthestTile() (int, error) {
	// From the start at most 4 walks can leave, and each has exactly one
	// way forward per step. The two that belong to the loop eventually
	// meet; the rest dead-end.
	fronts := map[Point]walk{}

	for _, dir := range []Direction{Up, Down, Left, Right} {
		x, y := dir.moveFrom(m.start.X, m.start.Y)

		pos := Point{X: x, Y: y}
		if _, ok := m.tileAt(pos); ok {
			fronts[pos] = walk{pos: pos, lastDir: dir, steps: 1}
		}
	}

	for len(fronts) > 0 {
		keys := make([]Point, 0, len(fronts))
		for key := range fronts {
			keys = append(keys, key)
		}

		for _, key := range keys {
			front, ok := fronts[key]
			if !ok {
				continue
			}
			delete(fronts, key)

			tile, ok := m.tileAt(front.pos)
			if !ok {
				return 0, fmt.Errorf("walk left the map at %v", front.pos)
			}

			nextDir, ok := tile.nextDir(front.lastDir)
			if !ok {
				continue // dead end
			}

			x, y := nextDir.moveFrom(front.pos.X, front.pos.Y)
			next := walk{pos: Point{X: x, Y: y}, lastDir: nextDir, steps: front.steps + 1}

			nextTile, ok := m.tileAt(next.pos)
			if !ok {
				continue // walked off the map
			}

			if nextTile == Start {
				return (next.steps + 1) / 2, nil
			}

			if other, ok := fronts[next.pos]; ok {
				return (next.steps + other.steps + 1) / 2, nil
			}

			fronts[next.pos] = next
		}
	}

	return 0, ErrNoLoop
}

// Parse reads the maze grid and locates the start tile.
func Parse(lines *scan.Lines) (*TileMap, error) {
	var tiles [][]Tile

	start := Point{X: -1, Y: -1}

	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		row := make([]Tile, 0, len(line.Text))

		for x, c := range line.Text {
			tile, err := ParseTile(c)
			if err != nil {
				return nil, line.Errorf("%v", err)
			}

			if tile == Start {
				start = Point{X: x, Y: line.Num}
			}

			row = append(row, tile)
		}

		tiles = append(tiles, row)
	}

	if err := lines.Err(); err != nil {
		return nil, err
	}

	if start.X < 0 {
		return nil, errors.New("could not find start tile")
	}

	return NewTileMap(tiles, start)
}
