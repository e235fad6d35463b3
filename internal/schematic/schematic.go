// Package schematic finds part numbers and gear ratios in the day 3
// engine schematic grid. A part number is any number adjacent (including
// diagonally) to a symbol; a gear is a '*' adjacent to exactly two
// numbers.
package schematic

import (
	"advent2023/internal/scan"
)

const (
	gearSymbol = '*'
	period     = '.'
)

// SymbolKind distinguishes gear candidates from every other symbol.
type SymbolKind int

const (
	SymbolOther SymbolKind = iota
	SymbolGear
)

// Symbol is a single non-digit, non-period cell.
type Symbol struct {
	Kind SymbolKind
	X    int
	Y    int
}

// Number is a run of digit cells. EndX is the column of the last digit,
// inclusive.
type Number struct {
	Value  int
	StartX int
	EndX   int
	Y      int
}

// IsAdjacentTo reports whether the symbol touches the number, including
// diagonally.
func (n Number) IsAdjacentTo(s Symbol) bool {
	return s.X >= n.StartX-1 && s.X <= n.EndX+1 &&
		s.Y >= n.Y-1 && s.Y <= n.Y+1
}

// Row holds one schematic line's symbols and numbers.
type Row struct {
	Symbols []Symbol
	Numbers []Number
}

// ParseRow splits one schematic line into its symbols and numbers.
func ParseRow(text string, y int) Row {
	var row Row

	building := false
	var current Number

	flush := func() {
		if building {
			row.Numbers = append(row.Numbers, current)
			building = false
		}
	}

	for x, c := range text {
		if c >= '0' && c <= '9' {
			digit := int(c - '0')
			if building {
				current.Value = current.Value*10 + digit
				current.EndX = x
			} else {
				current = Number{Value: digit, StartX: x, EndX: x, Y: y}
				building = true
			}

			continue
		}

		flush()

		if c != period {
			kind := SymbolOther
			if c == gearSymbol {
				kind = SymbolGear
			}

			row.Symbols = append(row.Symbols, Symbol{Kind: kind, X: x, Y: y})
		}
	}

	flush()

	return row
}

// FindPartNumbers returns the values of the current row's numbers that
// touch a symbol on the previous, current or next row. Only those three
// rows can contain an adjacent symbol, so the whole grid never needs to
// be cross-checked.
func FindPartNumbers(prev, current, next *Row) []int {
	symbols := neighborhood(prev, current, next, func(r *Row) []Symbol { return r.Symbols })

	var parts []int

	for _, number := range current.Numbers {
		for _, symbol := range symbols {
			if number.IsAdjacentTo(symbol) {
				parts = append(parts, number.Value)
				break
			}
		}
	}

	return parts
}

// FindGearRatios returns the ratio of every gear on the current row: the
// product of the two numbers adjacent to a '*' that touches exactly two.
func FindGearRatios(prev, current, next *Row) []int {
	numbers := neighborhood(prev, current, next, func(r *Row) []Number { return r.Numbers })

	var ratios []int

	for _, symbol := range current.Symbols {
		if symbol.Kind != SymbolGear {
			continue
		}

		var adjacent []int
		for _, number := range numbers {
			if number.IsAdjacentTo(symbol) {
				adjacent = append(adjacent, number.Value)
			}
		}

		if len(adjacent) == 2 {
			ratios = append(ratios, adjacent[0]*adjacent[1])
		}
	}

	return ratios
}

func neighborhood[T any](prev, current, next *Row, pick func(*Row) []T) []T {
	var all []T

	if prev != nil {
		all = append(all, pick(prev)...)
	}

	all = append(all, pick(current)...)

	if next != nil {
		all = append(all, pick(next)...)
	}

	return all
}

// FindAll walks the whole schematic with a three-row window and collects
// every part number and gear ratio.
func FindAll(lines *scan.Lines) (partNumbers, gearRatios []int, err error) {
	first, ok := lines.Next()
	if !ok {
		return nil, nil, lines.Err()
	}

	var prev *Row
	current := ParseRow(first.Text, first.Num)

	for {
		var next *Row
		if line, ok := lines.Next(); ok {
			row := ParseRow(line.Text, line.Num)
			next = &row
		}

		partNumbers = append(partNumbers, FindPartNumbers(prev, &current, next)...)
		gearRatios = append(gearRatios, FindGearRatios(prev, &current, next)...)

		if next == nil {
			break
		}

		prevRow := current
		prev = &prevRow
		current = *next
	}

	return partNumbers, gearRatios, lines.Err()
}
