package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPacerFirstWaitIsImmediate(t *testing.T) {
	p := NewPacer(time.Hour)

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	require.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestPacerPauseStartsWhenRequestEnds(t *testing.T) {
	delay := 80 * time.Millisecond
	p := NewPacer(delay)

	require.NoError(t, p.Wait(context.Background()))
	// A request slower than the delay must not eat into the pause.
	time.Sleep(2 * delay)
	p.Done()
	end := time.Now()

	require.NoError(t, p.Wait(context.Background()))
	require.GreaterOrEqual(t, time.Since(end), delay-5*time.Millisecond)
}

func TestPacerWaitHonoursCancellation(t *testing.T) {
	p := NewPacer(time.Hour)
	p.Done()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Wait(ctx), context.Canceled)
}

func TestPacerZeroDelay(t *testing.T) {
	p := NewPacer(0)
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(context.Background()))
		p.Done()
	}
}
