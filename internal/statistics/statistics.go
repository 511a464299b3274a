// Package statistics aggregates the outcomes of simulated Hanabi games.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/lox/hanasim/internal/game"
)

// MaxScore is the highest score a single game can reach
const MaxScore = 25

// GameResult records the outcome of one simulated game
type GameResult struct {
	Score     int
	Turns     int
	Seed      int64 // RNG seed for this game (for replay)
	Elapsed   time.Duration
	EndReason game.EndReason
}

// Statistics tracks aggregate results across a batch of games
type Statistics struct {
	Games  int
	Scores []float64 // per-game scores, insertion order

	Histogram [MaxScore + 1]int // game count per final score

	PerfectGames int // games ending at score 25
	Strikeouts   int // games ended by three strikes
	Exhausted    int // games ended by running out the deck

	TotalTurns   int
	TotalElapsed time.Duration
}

// Add incorporates one game result
func (s *Statistics) Add(result GameResult) {
	s.Games++
	s.Scores = append(s.Scores, float64(result.Score))
	if result.Score >= 0 && result.Score <= MaxScore {
		s.Histogram[result.Score]++
	}

	switch result.EndReason {
	case game.EndReasonPerfectScore:
		s.PerfectGames++
	case game.EndReasonStrikeout:
		s.Strikeouts++
	case game.EndReasonDeckExhausted:
		s.Exhausted++
	}

	s.TotalTurns += result.Turns
	s.TotalElapsed += result.Elapsed
}

// Merge folds another batch into this one. Used to combine per-worker
// aggregates after a parallel run.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Scores = append(s.Scores, other.Scores...)
	for i, n := range other.Histogram {
		s.Histogram[i] += n
	}
	s.PerfectGames += other.PerfectGames
	s.Strikeouts += other.Strikeouts
	s.Exhausted += other.Exhausted
	s.TotalTurns += other.TotalTurns
	s.TotalElapsed += other.TotalElapsed
}

// Mean returns the arithmetic mean score
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return stat.Mean(s.Scores, nil)
}

// StdDev returns the sample standard deviation of scores
func (s *Statistics) StdDev() float64 {
	if s.Games < 2 {
		return 0
	}
	return stat.StdDev(s.Scores, nil)
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Scores))
	copy(sorted, s.Scores)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// MeanTurns returns the average number of moves per game
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

// MeanElapsed returns the average wall time per game
func (s *Statistics) MeanElapsed() time.Duration {
	if s.Games == 0 {
		return 0
	}
	return s.TotalElapsed / time.Duration(s.Games)
}

// Validate checks internal consistency of the aggregate
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid game count: %d", s.Games)
	}
	if len(s.Scores) != s.Games {
		return fmt.Errorf("scores length (%d) does not match game count (%d)", len(s.Scores), s.Games)
	}
	histTotal := 0
	for _, n := range s.Histogram {
		histTotal += n
	}
	if histTotal != s.Games {
		return fmt.Errorf("histogram total (%d) does not match game count (%d)", histTotal, s.Games)
	}
	endings := s.PerfectGames + s.Strikeouts + s.Exhausted
	if endings != s.Games {
		return fmt.Errorf("ending counts total (%d) does not match game count (%d)", endings, s.Games)
	}
	return nil
}
