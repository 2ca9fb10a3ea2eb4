package signalio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	monoChannels   = 1
	stereoChannels = 2

	// wavFormatPCM is the WAVE_FORMAT_PCM tag.
	wavFormatPCM = 1
)

// Audio is a decoded PCM file with samples normalized to [-1, 1].
type Audio struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return len(a.Channels[0])
}

// ReadWAV decodes a 16, 24 or 32-bit PCM WAV file.
func ReadWAV(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	bitDepth := int(decoder.BitDepth)
	maxVal, err := maxValue(bitDepth)
	if err != nil {
		return nil, err
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d in %s", channels, path)
	}
	if len(buf.Data) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}

	return &Audio{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   bitDepth,
		Channels:   deinterleave(buf.Data, channels, 1/maxVal),
	}, nil
}

// WriteWAV encodes a as PCM at a.BitDepth. Samples are clamped to [-1, 1]
// and rounded to the nearest integer level.
func WriteWAV(path string, a *Audio) (err error) {
	maxVal, err := maxValue(a.BitDepth)
	if err != nil {
		return err
	}
	if len(a.Channels) == 0 {
		return ErrNoSamples
	}
	frames := a.Frames()
	for ch, data := range a.Channels {
		if len(data) != frames {
			return fmt.Errorf("channel %d has %d samples, want %d", ch, len(data), frames)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	encoder := wav.NewEncoder(f, a.SampleRate, a.BitDepth, len(a.Channels), wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(a.Channels),
			SampleRate:  a.SampleRate,
		},
		Data:           interleave(a.Channels, maxVal),
		SourceBitDepth: a.BitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// maxValue returns the maximum sample value for the given bit depth.
func maxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}

// deinterleave converts interleaved int samples to per-channel float slices.
func deinterleave(data []int, numChannels int, invMaxVal float64) [][]float64 {
	frames := len(data) / numChannels
	result := make([][]float64, numChannels)
	for ch := range numChannels {
		result[ch] = make([]float64, frames)
	}

	if numChannels == monoChannels {
		buf := result[0]
		for i := range frames {
			buf[i] = float64(data[i]) * invMaxVal
		}
		return result
	}

	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			result[ch][i] = float64(data[base+ch]) * invMaxVal
		}
	}
	return result
}

// interleave converts per-channel float slices to interleaved int samples.
func interleave(channels [][]float64, maxVal float64) []int {
	numChannels := len(channels)
	frames := len(channels[0])

	var flat []float64
	switch numChannels {
	case monoChannels:
		flat = channels[0]
	case stereoChannels:
		flat = make([]float64, frames*stereoChannels)
		f64.Interleave2(flat, channels[0], channels[1])
	default:
		flat = make([]float64, frames*numChannels)
		for i := range frames {
			for ch := range numChannels {
				flat[i*numChannels+ch] = channels[ch][i]
			}
		}
	}

	out := make([]int, len(flat))
	for i, v := range flat {
		v = max(-1, min(1, v))
		out[i] = int(math.Round(v * maxVal))
	}
	return out
}
