package bench

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	calls := 0
	stats, err := Run(5, func() error {
		calls++
		time.Sleep(time.Millisecond)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 5, calls)
	assert.Equal(t, 5, stats.Runs)
	assert.GreaterOrEqual(t, stats.Min, time.Millisecond)
	assert.LessOrEqual(t, stats.Min, stats.Mean)
	assert.LessOrEqual(t, stats.Mean, stats.Max)
	assert.Contains(t, stats.String(), "5 runs")
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(0, func() error { return nil })
	require.ErrorIs(t, err, ErrNoRuns)

	boom := errors.New("boom")
	calls := 0
	_, err = Run(10, func() error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "run 3")
	assert.Equal(t, 3, calls)
}
