// Package boatrace counts the ways to beat the record distance in each
// day 6 toy boat race. Holding the button for h milliseconds of a t
// millisecond race travels h*(t-h) millimeters.
package boatrace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent2023/internal/scan"
)

// Race is one column of the input: the race duration and the distance
// record to beat.
type Race struct {
	Time   int
	Record int
}

// WaysToBeatRecord counts the button-hold durations that travel strictly
// farther than the record.
func (r Race) WaysToBeatRecord() int {
	ways := 0

	for hold := 1; hold <= r.Time-1; hold++ {
		distance := hold * (r.Time - hold)
		if distance > r.Record {
			ways++
		}
	}

	return ways
}

// TotalWaysToWin multiplies the ways to win across all races.
func TotalWaysToWin(races []Race) int {
	total := 1

	for _, race := range races {
		total *= race.WaysToBeatRecord()
	}

	return total
}

// ParseRaces reads the two-line input: a "Time:" line and a "Distance:"
// line whose columns pair up into races.
func ParseRaces(lines *scan.Lines) ([]Race, error) {
	times, err := parseNumberRow(lines, "Time:")
	if err != nil {
		return nil, err
	}

	distances, err := parseNumberRow(lines, "Distance:")
	if err != nil {
		return nil, err
	}

	if len(times) != len(distances) {
		return nil, fmt.Errorf("got %d times but %d distances", len(times), len(distances))
	}

	races := make([]Race, len(times))
	for i := range races {
		races[i] = Race{Time: times[i], Record: distances[i]}
	}

	return races, nil
}

func parseNumberRow(lines *scan.Lines, header string) ([]int, error) {
	line, ok := lines.Next()
	if !ok {
		return nil, errors.New("unexpected end of input, expected " + header + " line")
	}

	fields := strings.Fields(line.Text)
	if len(fields) == 0 || fields[0] != header {
		return nil, line.Errorf("expected line starting with %q", header)
	}

	numbers := make([]int, 0, len(fields)-1)

	for _, field := range fields[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, line.Errorf("invalid number %q", field)
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}
