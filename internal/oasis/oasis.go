// Package oasis extrapolates the day 9 sensor histories: build the
// difference table down to an all-zero row, then extend it forward or
// backward.
package oasis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent2023/internal/scan"
)

// ErrHistoryTooShort is returned when a history runs out of values
// before its differences reach zero.
var ErrHistoryTooShort = errors.New("history too short to extrapolate")

func stepDeltas(nums []int64) []int64 {
	deltas := make([]int64, len(nums)-1)

	for i := 1; i < len(nums); i++ {
		deltas[i-1] = nums[i] - nums[i-1]
	}

	return deltas
}

// buildDeltaRows stacks difference rows under the history until a row is
// all zeros.
func buildDeltaRows(history []int64) ([][]int64, error) {
	rows := [][]int64{history}

	for {
		current := rows[len(rows)-1]
		if len(current) < 2 {
			return nil, fmt.Errorf("%w: %v", ErrHistoryTooShort, history)
		}

		deltas := stepDeltas(current)
		rows = append(rows, deltas)

		allZero := true
		for _, d := range deltas {
			if d != 0 {
				allZero = false
				break
			}
		}

		if allZero {
			return rows, nil
		}
	}
}

// NextValue extrapolates the value following the history.
func NextValue(history []int64) (int64, error) {
	rows, err := buildDeltaRows(history)
	if err != nil {
		return 0, err
	}

	var next int64
	for i := len(rows) - 2; i >= 0; i-- {
		row := rows[i]
		next += row[len(row)-1]
	}

	return next, nil
}

// PrevValue extrapolates the value preceding the history.
func PrevValue(history []int64) (int64, error) {
	rows, err := buildDeltaRows(history)
	if err != nil {
		return 0, err
	}

	var prev int64
	for i := len(rows) - 2; i >= 0; i-- {
		prev = rows[i][0] - prev
	}

	return prev, nil
}

// FuturePredictions extrapolates every history forward.
func FuturePredictions(histories [][]int64) ([]int64, error) {
	return predictions(histories, NextValue)
}

// PastPredictions extrapolates every history backward.
func PastPredictions(histories [][]int64) ([]int64, error) {
	return predictions(histories, PrevValue)
}

func predictions(histories [][]int64, predict func([]int64) (int64, error)) ([]int64, error) {
	result := make([]int64, 0, len(histories))

	for _, history := range histories {
		value, err := predict(history)
		if err != nil {
			return nil, err
		}

		result = append(result, value)
	}

	return result, nil
}

// Sum adds up a prediction list.
func Sum(values []int64) int64 {
	var sum int64
	for _, v := range values {
		sum += v
	}

	return sum
}

// ParseHistories reads one whitespace-separated signed number list per
// line.
func ParseHistories(lines *scan.Lines) ([][]int64, error) {
	var histories [][]int64

	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		var history []int64

		for _, field := range strings.Fields(line.Text) {
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, line.Errorf("cannot parse %q as a number", field)
			}

			history = append(history, n)
		}

		histories = append(histories, history)
	}

	if err := lines.Err(); err != nil {
		return nil, err
	}

	return histories, nil
}
