package simulator

import (
	"fmt"
	"strings"

	"github.com/lox/hanasim/internal/statistics"
)

// PrintSummary prints an aggregate report of a simulation run
func PrintSummary(stats *statistics.Statistics, agentName string) {
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== RESULTS for %s agent ===\n", agentName)
	fmt.Printf("Games played: %d\n", stats.Games)
	fmt.Printf("Mean score: %.3f / %d\n", stats.Mean(), statistics.MaxScore)
	fmt.Printf("Median: %.1f, StdDev: %.3f, StdErr: %.4f\n", stats.Median(), stats.StdDev(), stats.StdError())
	fmt.Printf("95%% CI: [%.3f, %.3f]\n", low, high)
	fmt.Printf("Percentiles: P5=%.0f P25=%.0f P75=%.0f P95=%.0f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Printf("\n=== ENDINGS ===\n")
	fmt.Printf("Perfect games: %d (%.1f%%)\n", stats.PerfectGames, percent(stats.PerfectGames, stats.Games))
	fmt.Printf("Strikeouts: %d (%.1f%%)\n", stats.Strikeouts, percent(stats.Strikeouts, stats.Games))
	fmt.Printf("Deck exhausted: %d (%.1f%%)\n", stats.Exhausted, percent(stats.Exhausted, stats.Games))
	fmt.Printf("Mean turns: %.1f, mean time: %s\n", stats.MeanTurns(), stats.MeanElapsed())

	fmt.Printf("\n=== SCORE HISTOGRAM ===\n")
	max := 0
	for _, n := range stats.Histogram {
		if n > max {
			max = n
		}
	}
	for score, n := range stats.Histogram {
		if n == 0 {
			continue
		}
		width := 0
		if max > 0 {
			width = n * 40 / max
		}
		fmt.Printf("%2d | %-40s %d\n", score, strings.Repeat("#", width), n)
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
