package experiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/sim"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Seed = 42
	cfg.Sweeps = 16
	cfg.Init = config.InitRandom
	return cfg
}

func TestRun(t *testing.T) {
	e, err := New(smallConfig(), nil)
	require.NoError(t, err)
	require.Equal(t, int64(42), e.Seed())

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Final, 64)
	require.Equal(t, uint64(16*64), res.Updates)
	require.Equal(t, res.Final, e.Simulator().Snapshot())
	require.Equal(t, e.Simulator().Magnetisation(), res.Magnetisation)
}

func TestRun_Deterministic(t *testing.T) {
	run := func() *Result {
		e, err := New(smallConfig(), nil)
		require.NoError(t, err)
		res, err := e.Run(context.Background())
		require.NoError(t, err)
		return res
	}
	require.Equal(t, run(), run())
}

// Equal seeds through the config and through sim options give the same run.
func TestRun_MatchesSimulator(t *testing.T) {
	cfg := smallConfig()
	e, err := New(cfg, nil)
	require.NoError(t, err)
	res, err := e.Run(context.Background())
	require.NoError(t, err)

	s, err := sim.New(cfg.Width, cfg.Height, cfg.Temperature, sim.WithSeed(cfg.Seed))
	require.NoError(t, err)
	s.Randomise()
	for i := 0; i < cfg.Sweeps; i++ {
		require.NoError(t, s.Sweep())
	}
	require.Equal(t, s.Snapshot(), res.Final)
}

func TestRun_ColdOrderedStaysOrdered(t *testing.T) {
	cfg := smallConfig()
	cfg.Init = config.InitUp
	cfg.Temperature = 1.0
	e, err := New(cfg, nil)
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Greater(t, res.Magnetisation, 0.9)
}

func TestRun_ZeroSweeps(t *testing.T) {
	cfg := smallConfig()
	cfg.Sweeps = 0
	cfg.Init = config.InitDown
	e, err := New(cfg, nil)
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, res.Updates)
	require.Equal(t, -1.0, res.Magnetisation)
}

func TestRun_Stopped(t *testing.T) {
	e, err := New(smallConfig(), nil)
	require.NoError(t, err)
	e.Simulator().Stop()

	_, err = e.Run(context.Background())
	require.Error(t, err)
}

func TestRun_Canceled(t *testing.T) {
	e, err := New(smallConfig(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_Invalid(t *testing.T) {
	cfg := smallConfig()
	cfg.Temperature = -1
	_, err := New(cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNew_RandomSeed(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = 0
	e, err := New(cfg, nil)
	require.NoError(t, err)
	require.NotZero(t, e.Seed())
}
