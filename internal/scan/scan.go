// Package scan reads puzzle input as a stream of numbered lines, so parse
// errors can always point at the offending line.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line is a single input line and its zero-based position in the input.
type Line struct {
	Num  int
	Text string
}

// IsEmpty returns true for a blank line.
func (l Line) IsEmpty() bool {
	return l.Text == ""
}

// Errorf builds an error prefixed with the line number, for diagnostics
// like "LINE 4: expected 3 numbers, got 2".
func (l Line) Errorf(format string, args ...any) error {
	return fmt.Errorf("LINE %d: %s", l.Num, fmt.Sprintf(format, args...))
}

// Lines iterates over an input's lines with one line of lookahead.
type Lines struct {
	scanner *bufio.Scanner
	next    *Line
	num     int
	err     error
}

// NewLines wraps a reader in a line iterator.
func NewLines(r io.Reader) *Lines {
	return &Lines{scanner: bufio.NewScanner(r)}
}

// NewLinesFromString splits s into lines; convenient for tests and for
// embedded example inputs.
func NewLinesFromString(s string) *Lines {
	return NewLines(strings.NewReader(s))
}

// Next returns the next line, or false at end of input.
func (ls *Lines) Next() (Line, bool) {
	if ls.next != nil {
		line := *ls.next
		ls.next = nil

		return line, true
	}

	return ls.advance()
}

// Peek returns the next line without consuming it.
func (ls *Lines) Peek() (Line, bool) {
	if ls.next == nil {
		line, ok := ls.advance()
		if !ok {
			return Line{}, false
		}

		ls.next = &line
	}

	return *ls.next, true
}

func (ls *Lines) advance() (Line, bool) {
	if ls.err != nil || !ls.scanner.Scan() {
		if ls.err == nil {
			ls.err = ls.scanner.Err()
		}

		return Line{}, false
	}

	line := Line{Num: ls.num, Text: ls.scanner.Text()}
	ls.num++

	return line, true
}

// Err reports any read error encountered; io.EOF is not an error.
func (ls *Lines) Err() error {
	return ls.err
}

// ExpectEmpty consumes one line and fails unless it is blank.
func (ls *Lines) ExpectEmpty() error {
	line, ok := ls.Next()
	if !ok {
		return fmt.Errorf("unexpected end of input, expected empty line")
	}

	if !line.IsEmpty() {
		return line.Errorf("expected empty line, got %q", line.Text)
	}

	return nil
}
