package simulator

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(games, workers int) Config {
	return Config{
		Games:   games,
		Players: 5,
		Agent:   "smart",
		Seed:    42,
		Workers: workers,
		Logger:  log.New(io.Discard),
	}
}

func TestSimulator_RunAggregatesAllGames(t *testing.T) {
	s := New(testConfig(20, 4))
	stats, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 20, stats.Games)
	assert.Len(t, stats.Scores, 20)
	require.NoError(t, stats.Validate())
	assert.GreaterOrEqual(t, stats.Mean(), 0.0)
	assert.LessOrEqual(t, stats.Mean(), 25.0)
}

func TestSimulator_ReproducibleAcrossWorkerCounts(t *testing.T) {
	// Game i is seeded from (base, i) no matter which worker plays it, so
	// the multiset of scores must not depend on parallelism
	serial, err := New(testConfig(12, 1)).Run(context.Background())
	require.NoError(t, err)
	parallel, err := New(testConfig(12, 4)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, serial.Games, parallel.Games)
	assert.Equal(t, serial.Histogram, parallel.Histogram)
	assert.Equal(t, serial.TotalTurns, parallel.TotalTurns)
	assert.InDelta(t, serial.Mean(), parallel.Mean(), 1e-9)
}

func TestSimulator_SameSeedSameResults(t *testing.T) {
	a, err := New(testConfig(8, 2)).Run(context.Background())
	require.NoError(t, err)
	b, err := New(testConfig(8, 2)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Histogram, b.Histogram)
	assert.Equal(t, a.TotalTurns, b.TotalTurns)
}

func TestSimulator_DifferentSeedsDiffer(t *testing.T) {
	cfgA := testConfig(10, 2)
	cfgB := testConfig(10, 2)
	cfgB.Seed = 43

	a, err := New(cfgA).Run(context.Background())
	require.NoError(t, err)
	b, err := New(cfgB).Run(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, a.Scores, b.Scores)
}

func TestSimulator_RejectsNonPositiveGameCount(t *testing.T) {
	_, err := New(testConfig(0, 1)).Run(context.Background())
	assert.Error(t, err)
}

func TestSimulator_UnknownAgentFails(t *testing.T) {
	cfg := testConfig(2, 1)
	cfg.Agent = "psychic"

	_, err := New(cfg).Run(context.Background())
	assert.Error(t, err)
}

func TestSimulator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(100, 2)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulator_WritesReplayFiles(t *testing.T) {
	cfg := testConfig(3, 1)
	cfg.ReplayDir = filepath.Join(t.TempDir(), "replays")

	_, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	entries, err := os.ReadDir(cfg.ReplayDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "game_000000.json", entries[0].Name())

	data, err := os.ReadFile(filepath.Join(cfg.ReplayDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"numPlayers": 5`)
}

func TestSimulator_MockClockTiming(t *testing.T) {
	cfg := testConfig(2, 1)
	cfg.Clock = quartz.NewMock(t)

	stats, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalElapsed, "a mock clock never advances on its own")
}

func TestSimulator_RandAgentBatchCompletes(t *testing.T) {
	cfg := testConfig(10, 2)
	cfg.Agent = "rand"

	stats, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Games)
	require.NoError(t, stats.Validate())
}
