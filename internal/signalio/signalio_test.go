package signalio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadColumn(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    ColumnOptions
		want    []float64
		wantErr string
	}{
		{
			name:  "single_column",
			input: "1.5\n-2\n3e-3\n",
			want:  []float64{1.5, -2, 0.003},
		},
		{
			name:  "header_and_second_column",
			input: "time,ppg\n0,0.25\n0.033, 0.5\n0.067,0.75\n",
			opts:  ColumnOptions{Column: 1, SkipRows: 1},
			want:  []float64{0.25, 0.5, 0.75},
		},
		{
			name:  "semicolon_delimiter",
			input: "1;10\n2;20\n",
			opts:  ColumnOptions{Delimiter: ';', Column: 1},
			want:  []float64{10, 20},
		},
		{
			name:  "tab_delimiter",
			input: "a\t7\nb\t8\n",
			opts:  ColumnOptions{Delimiter: '\t', Column: 1},
			want:  []float64{7, 8},
		},
		{
			name:    "column_out_of_range",
			input:   "1,2\n3\n",
			opts:    ColumnOptions{Column: 1},
			wantErr: "column 1 out of range",
		},
		{
			name:    "not_a_number",
			input:   "1\nx\n",
			wantErr: "record 2",
		},
		{
			name:    "only_header",
			input:   "value\n",
			opts:    ColumnOptions{SkipRows: 1},
			wantErr: ErrNoSamples.Error(),
		},
		{
			name:    "negative_column",
			input:   "1\n",
			opts:    ColumnOptions{Column: -1},
			wantErr: "invalid column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadColumn(strings.NewReader(tt.input), tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteColumns(t *testing.T) {
	var buf bytes.Buffer
	err := WriteColumns(&buf, 0, []string{"input", "output"}, []float64{1, 2, 3}, []float64{0.5, 0.25})
	require.NoError(t, err)
	assert.Equal(t, "input,output\n1,0.5\n2,0.25\n3,\n", buf.String())

	got, err := ReadColumn(strings.NewReader(buf.String()), ColumnOptions{Column: 0, SkipRows: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestColumnFilesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.tsv")
	signal := []float64{0.1, 1.0 / 3.0, -7.25e-9, 42}

	require.NoError(t, WriteColumnsFile(path, '\t', nil, signal))
	got, err := ReadColumnFile(path, ColumnOptions{Delimiter: '\t'})
	require.NoError(t, err)
	assert.Equal(t, signal, got)

	_, err = ReadColumnFile(filepath.Join(t.TempDir(), "missing.csv"), ColumnOptions{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWAVRoundTrip(t *testing.T) {
	for _, bitDepth := range []int{16, 24} {
		for _, channels := range []int{1, 2, 3} {
			t.Run(fmt.Sprintf("%dbit_%dch", bitDepth, channels), func(t *testing.T) {
				maxVal, err := maxValue(bitDepth)
				require.NoError(t, err)

				in := &Audio{SampleRate: 8000, BitDepth: bitDepth, Channels: make([][]float64, channels)}
				for ch := range channels {
					in.Channels[ch] = make([]float64, 100)
					for i := range in.Channels[ch] {
						level := float64((i*37+ch*11)%201 - 100)
						in.Channels[ch][i] = level / 100
					}
				}

				path := filepath.Join(t.TempDir(), "signal.wav")
				require.NoError(t, WriteWAV(path, in))

				out, err := ReadWAV(path)
				require.NoError(t, err)
				assert.Equal(t, 8000, out.SampleRate)
				assert.Equal(t, bitDepth, out.BitDepth)
				require.Len(t, out.Channels, channels)
				assert.Equal(t, 100, out.Frames())

				for ch := range channels {
					assert.InDeltaSlice(t, in.Channels[ch], out.Channels[ch], 1/maxVal)
				}
			})
		}
	}
}

func TestWriteWAV_Clamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	in := &Audio{SampleRate: 100, BitDepth: 16, Channels: [][]float64{{2, -2, 0.5}}}
	require.NoError(t, WriteWAV(path, in))

	out, err := ReadWAV(path)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, -1, 0.5}, out.Channels[0], 1/maxInt16)
}

func TestWAVErrors(t *testing.T) {
	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.wav")
	require.NoError(t, os.WriteFile(invalid, []byte("not a wav file"), 0o600))
	_, err := ReadWAV(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")

	_, err = ReadWAV(filepath.Join(dir, "missing.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")

	err = WriteWAV(filepath.Join(dir, "x.wav"), &Audio{SampleRate: 100, BitDepth: 12, Channels: [][]float64{{0}}})
	assert.ErrorContains(t, err, "unsupported bit depth")

	err = WriteWAV(filepath.Join(dir, "y.wav"), &Audio{SampleRate: 100, BitDepth: 16, Channels: [][]float64{{0, 1}, {0}}})
	assert.ErrorContains(t, err, "channel 1")

	err = WriteWAV(filepath.Join(dir, "z.wav"), &Audio{SampleRate: 100, BitDepth: 16})
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestInterleaveDeinterleave(t *testing.T) {
	channels := [][]float64{{0, 0.5, 1}, {-1, -0.5, 0}}
	ints := interleave(channels, 2)
	assert.Equal(t, []int{0, -2, 1, -1, 2, 0}, ints)

	back := deinterleave(ints, 2, 0.5)
	assert.Equal(t, channels, back)
}
