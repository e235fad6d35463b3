package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent2023/internal/almanac"
	"advent2023/internal/boatrace"
	"advent2023/internal/calibration"
	"advent2023/internal/camelcards"
	"advent2023/internal/cubegame"
	"advent2023/internal/network"
	"advent2023/internal/oasis"
	"advent2023/internal/pipemaze"
	"advent2023/internal/scan"
	"advent2023/internal/schematic"
	"advent2023/internal/scratchcard"
)

func stdinLines() *scan.Lines {
	return scan.NewLines(os.Stdin)
}

var day01Cmd = &cobra.Command{
	Use:   "day01",
	Short: "Sum the calibration values hidden in each line",
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := calibration.Sum(stdinLines())
		if err != nil {
			return err
		}

		fmt.Println("Sum:", sum)

		return nil
	},
}

var day02Cmd = &cobra.Command{
	Use:   "day02",
	Short: "Sum the numbers of cube games possible with a 12/13/14 bag",
	RunE: func(cmd *cobra.Command, args []string) error {
		bag := cubegame.Bag{Red: 12, Green: 13, Blue: 14}

		sum, err := cubegame.PossibleGameSum(stdinLines(), bag)
		if err != nil {
			return err
		}

		fmt.Println("Sum:", sum)

		return nil
	},
}

var day03Cmd = &cobra.Command{
	Use:   "day03",
	Short: "Sum the part numbers and gear ratios of the engine schematic",
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, ratios, err := schematic.FindAll(stdinLines())
		if err != nil {
			return err
		}

		partSum := 0
		for _, p := range parts {
			partSum += p
		}

		ratioSum := 0
		for _, r := range ratios {
			ratioSum += r
		}

		fmt.Println("Sum of part numbers:", partSum)
		fmt.Println("Sum of gear ratios:", ratioSum)

		return nil
	},
}

var day04Cmd = &cobra.Command{
	Use:   "day04",
	Short: "Score the scratchcards and count the card-copy cascade",
	RunE: func(cmd *cobra.Command, args []string) error {
		points, cards, err := scratchcard.TotalPointsAndCards(stdinLines())
		if err != nil {
			return err
		}

		fmt.Println("Points won:", points)
		fmt.Println("Cards won:", cards)

		return nil
	},
}

var day05Part int

var day05Cmd = &cobra.Command{
	Use:   "day05",
	Short: "Map seeds through the almanac to the lowest location",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("parsing input")

		a, err := almanac.Parse(stdinLines())
		if err != nil {
			return fmt.Errorf("parsing input: %w", err)
		}

		logger.Debug("parsed almanac",
			zap.Int("seed_numbers", len(a.Seeds)),
			zap.Int("stages", len(a.Pipeline.Stages())))

		var lowest uint64

		switch day05Part {
		case 1:
			final := a.Pipeline.FinalMappings(a.Seeds)
			if len(final) == 0 {
				return almanac.ErrNoSeedRanges
			}

			lowest = final[0]
			for _, v := range final {
				lowest = min(lowest, v)
			}
		case 2:
			ranges, err := a.SeedRanges()
			if err != nil {
				return err
			}

			lowest, err = a.Pipeline.LowestFinalMapping(ranges)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid part %d, expected 1 or 2", day05Part)
		}

		fmt.Println("Lowest final mapping:", lowest)

		return nil
	},
}

var day06Cmd = &cobra.Command{
	Use:   "day06",
	Short: "Count the ways to beat the boat race records",
	RunE: func(cmd *cobra.Command, args []string) error {
		races, err := boatrace.ParseRaces(stdinLines())
		if err != nil {
			return err
		}

		fmt.Println("Total ways to win:", boatrace.TotalWaysToWin(races))

		return nil
	},
}

var day07Cmd = &cobra.Command{
	Use:   "day07",
	Short: "Rank the Camel Cards hands and total the winnings",
	RunE: func(cmd *cobra.Command, args []string) error {
		hands, err := camelcards.ParseHands(stdinLines())
		if err != nil {
			return err
		}

		fmt.Println("Total winnings:", camelcards.TotalWinnings(hands))

		return nil
	},
}

var day08Cmd = &cobra.Command{
	Use:   "day08",
	Short: "Count the steps from AAA to ZZZ through the desert network",
	RunE: func(cmd *cobra.Command, args []string) error {
		net, directions, err := network.Parse(stdinLines())
		if err != nil {
			return err
		}

		steps, err := net.StepsBetween("AAA", "ZZZ", directions)
		if err != nil {
			return err
		}

		fmt.Println("Num steps =", steps)

		return nil
	},
}

var day09Cmd = &cobra.Command{
	Use:   "day09",
	Short: "Extrapolate the sensor histories forward and backward",
	RunE: func(cmd *cobra.Command, args []string) error {
		histories, err := oasis.ParseHistories(stdinLines())
		if err != nil {
			return err
		}

		future, err := oasis.FuturePredictions(histories)
		if err != nil {
			return err
		}

		past, err := oasis.PastPredictions(histories)
		if err != nil {
			return err
		}

		fmt.Println("Sum of future predictions:", oasis.Sum(future))
		fmt.Println("Sum of past predictions:", oasis.Sum(past))

		return nil
	},
}

var day10Cmd = &cobra.Command{
	Use:   "day10",
	Short: "Find the pipe loop tile farthest from the start",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := pipemaze.Parse(stdinLines())
		if err != nil {
			return err
		}

		steps, err := m.StepsToFarthestTile()
		if err != nil {
			return err
		}

		fmt.Println("Steps:", steps)

		return nil
	},
}

func init() {
	day05Cmd.Flags().IntVar(&day05Part, "part", 1, "puzzle part to solve (1 or 2)")

	rootCmd.AddCommand(
		day01Cmd,
		day02Cmd,
		day03Cmd,
		day04Cmd,
		day05Cmd,
		day06Cmd,
		day07Cmd,
		day08Cmd,
		day09Cmd,
		day10Cmd,
	)
}
