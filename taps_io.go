package filtfilt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// WriteTaps writes one coefficient per line using the shortest decimal
// representation that parses back to the same float64.
func WriteTaps(w io.Writer, taps []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range taps {
		if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTaps reads coefficients written one per line. Blank lines and
// surrounding whitespace are ignored.
func ReadTaps(r io.Reader) ([]float64, error) {
	var taps []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidCoefficients, line, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: line %d: non-finite value %q", ErrInvalidCoefficients, line, text)
		}
		taps = append(taps, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return taps, nil
}

// SaveCoefficients writes the numerator to bPath and the denominator to
// aPath, one value per line.
func SaveCoefficients(bPath, aPath string, c Coefficients) error {
	if c.IsZero() {
		return fmt.Errorf("%w: coefficients not initialized", ErrInvalidCoefficients)
	}
	if err := writeTapsFile(bPath, c.b); err != nil {
		return err
	}
	return writeTapsFile(aPath, c.a)
}

// LoadCoefficients reads a filter saved by SaveCoefficients. An empty aPath
// loads an FIR filter from bPath alone.
func LoadCoefficients(bPath, aPath string) (Coefficients, error) {
	b, err := readTapsFile(bPath)
	if err != nil {
		return Coefficients{}, err
	}
	if aPath == "" {
		return FIR(b)
	}
	a, err := readTapsFile(aPath)
	if err != nil {
		return Coefficients{}, err
	}
	return NewCoefficients(b, a)
}

func writeTapsFile(path string, taps []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := WriteTaps(f, taps); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readTapsFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	taps, err := ReadTaps(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return taps, nil
}
