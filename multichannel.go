package filtfilt

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FiltFiltMulti applies FiltFilt to every channel independently. Channels
// may have different lengths. When parallel is true channels are filtered
// concurrently; the first failing channel's error is returned and no
// output is produced.
func FiltFiltMulti(c Coefficients, channels [][]float64, parallel bool, opts ...Option) ([][]float64, error) {
	if len(channels) > maxChannels {
		return nil, fmt.Errorf("too many channels: %d (max %d)", len(channels), maxChannels)
	}

	output := make([][]float64, len(channels))

	if !parallel || len(channels) <= 1 {
		for ch, x := range channels {
			y, err := FiltFilt(c, x, opts...)
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", ch, err)
			}
			output[ch] = y
		}
		return output, nil
	}

	var g errgroup.Group
	for ch, x := range channels {
		g.Go(func() error {
			y, err := FiltFilt(c, x, opts...)
			if err != nil {
				return fmt.Errorf("channel %d: %w", ch, err)
			}
			output[ch] = y
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return output, nil
}
