// Package bench times repeated calls of a function by wall clock.
package bench

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoRuns is returned when fewer than one run is requested.
var ErrNoRuns = errors.New("at least one run is required")

// Stats summarizes the durations of repeated runs.
type Stats struct {
	Runs int           `json:"runs" yaml:"runs"`
	Min  time.Duration `json:"min_ns" yaml:"min"`
	Mean time.Duration `json:"mean_ns" yaml:"mean"`
	Max  time.Duration `json:"max_ns" yaml:"max"`
}

// String formats the summary on one line.
func (s Stats) String() string {
	return fmt.Sprintf("%d runs: min %v, mean %v, max %v", s.Runs, s.Min, s.Mean, s.Max)
}

// Run calls fn runs times and reports the spread of their durations. The
// first error stops timing and is returned with the run index.
func Run(runs int, fn func() error) (Stats, error) {
	if runs < 1 {
		return Stats{}, ErrNoRuns
	}

	stats := Stats{Runs: runs}
	var total time.Duration
	for i := range runs {
		start := time.Now()
		err := fn()
		elapsed := time.Since(start)
		if err != nil {
			return Stats{}, fmt.Errorf("run %d: %w", i+1, err)
		}

		total += elapsed
		if i == 0 || elapsed < stats.Min {
			stats.Min = elapsed
		}
		stats.Max = max(stats.Max, elapsed)
	}
	stats.Mean = total / time.Duration(runs)
	return stats, nil
}
