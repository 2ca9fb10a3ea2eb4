// Package signalio reads and writes sampled signals: columns of delimited
// text and PCM WAV files.
package signalio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoSamples is returned when a source holds no usable samples.
var ErrNoSamples = errors.New("no samples found")

// ColumnOptions selects one column of a delimited text file.
type ColumnOptions struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune

	// Column is the zero-based field index to read.
	Column int

	// SkipRows drops this many leading records, e.g. a header line.
	SkipRows int
}

func (o ColumnOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// ReadColumn parses one numeric column from delimited text. Records with
// fewer fields than Column+1 are rejected; empty fields are rejected.
func ReadColumn(r io.Reader, opts ColumnOptions) ([]float64, error) {
	if opts.Column < 0 {
		return nil, fmt.Errorf("invalid column index %d", opts.Column)
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.delimiter()
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var samples []float64
	for record := 0; ; record++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if record < opts.SkipRows {
			continue
		}
		if opts.Column >= len(fields) {
			return nil, fmt.Errorf("record %d: column %d out of range (%d fields)", record+1, opts.Column, len(fields))
		}

		text := strings.TrimSpace(fields[opts.Column])
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", record+1, err)
		}
		samples = append(samples, v)
	}

	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return samples, nil
}

// ReadColumnFile is ReadColumn on a file path.
func ReadColumnFile(path string, opts ColumnOptions) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open signal file: %w", err)
	}
	defer f.Close()

	samples, err := ReadColumn(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// WriteColumns writes the columns side by side, one record per sample
// index. Shorter columns leave their trailing fields empty. A non-empty
// header is written first.
func WriteColumns(w io.Writer, delimiter rune, header []string, columns ...[]float64) error {
	writer := csv.NewWriter(w)
	if delimiter != 0 {
		writer.Comma = delimiter
	}

	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return err
		}
	}

	rows := 0
	for _, col := range columns {
		rows = max(rows, len(col))
	}

	record := make([]string, len(columns))
	for i := range rows {
		for c, col := range columns {
			record[c] = ""
			if i < len(col) {
				record[c] = strconv.FormatFloat(col[i], 'g', -1, 64)
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteColumnsFile is WriteColumns to a newly created file.
func WriteColumnsFile(path string, delimiter rune, header []string, columns ...[]float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return WriteColumns(f, delimiter, header, columns...)
}
