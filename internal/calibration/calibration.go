// Package calibration recovers the two-digit calibration values from the
// day 1 input: the first and last digit of every line, where spelled-out
// digit words also count as digits.
package calibration

import (
	"errors"
	"strings"

	"advent2023/internal/scan"
)

var digitWords = [...]string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// ErrNoDigits is returned for a line containing no digit at all.
var ErrNoDigits = errors.New("no digits in line")

// Value returns a line's calibration value: its first and last digit read
// as one two-digit number. A line with a single digit uses it twice.
// Overlapping digit words are each seen ("eightwo" reads 8 then 2).
func Value(line string) (int, error) {
	first, last := -1, 0

	push := func(digit int) {
		if first < 0 {
			first = digit
		}

		last = digit
	}

	var words strings.Builder

	for _, c := range line {
		if c >= '0' && c <= '9' {
			push(int(c - '0'))
			continue
		}

		words.WriteRune(c)
		for i, word := range digitWords {
			if strings.HasSuffix(words.String(), word) {
				push(i + 1)
				break
			}
		}
	}

	if first < 0 {
		return 0, ErrNoDigits
	}

	return first*10 + last, nil
}

// Sum adds up the calibration values of every input line.
func Sum(lines *scan.Lines) (int, error) {
	sum := 0

	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		value, err := Value(line.Text)
		if err != nil {
			return 0, line.Errorf("%v", err)
		}

		sum += value
	}

	if err := lines.Err(); err != nil {
		return 0, err
	}

	return sum, nil
}
