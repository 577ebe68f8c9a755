package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/ising/internal/sim"
)

func TestTemperatures(t *testing.T) {
	cfg := Config{TMin: 1, TMax: 3, Points: 5}
	require.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, cfg.Temperatures())

	cfg.Points = 1
	require.Equal(t, []float64{1}, cfg.Temperatures())
}

func TestRun_OrderedAndDeterministic(t *testing.T) {
	cfg := Config{
		Width: 16, Height: 16,
		TMin: 1.0, TMax: 5.0, Points: 3,
		Sweeps: 100, Seed: 3, Init: sim.InitUp, Workers: 2,
	}

	points, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, points, 3)

	for i, want := range cfg.Temperatures() {
		require.Equal(t, want, points[i].Temperature)
	}

	// an ordered start stays ordered when cold and melts when hot
	require.Greater(t, points[0].Magnetisation, 0.9)
	require.Less(t, points[2].Magnetisation, 0.4)

	again, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, points, again)
}

func TestRun_Invalid(t *testing.T) {
	tests := []Config{
		{Width: 0, Height: 4, TMin: 1, TMax: 2, Points: 2},
		{Width: 4, Height: 4, TMin: 1, TMax: 2, Points: 0},
		{Width: 4, Height: 4, TMin: 0, TMax: 2, Points: 2},
		{Width: 4, Height: 4, TMin: 3, TMax: 2, Points: 2},
		{Width: 4, Height: 4, TMin: 1, TMax: 2, Points: 2, Sweeps: -1},
	}
	for _, cfg := range tests {
		_, err := Run(context.Background(), cfg)
		require.ErrorIs(t, err, ErrInvalidScan)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Width: 8, Height: 8, TMin: 1, TMax: 2, Points: 2, Sweeps: 10})
	require.ErrorIs(t, err, context.Canceled)
}
