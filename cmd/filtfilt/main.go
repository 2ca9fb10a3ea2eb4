// Command filtfilt designs windowed-sinc FIR filters and applies them to
// recorded signals with zero-phase forward-backward filtering.
//
// Usage:
//
//	filtfilt design                          # 61-tap 0.66-4 Hz band-pass at 30 Hz
//	filtfilt design --taps 101 --window kaiser --kaiser-beta 6
//	filtfilt apply -d , -c 1 -r 1 data.txt   # column 1 after a header row
//	filtfilt apply --pad even music.wav      # every channel of a WAV file
//	filtfilt compare demoFiltFilt reference.txt --tolerance 1e-9
//
// Settings come from flags, FILTFILT_* environment variables and an
// optional YAML file given with --config.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	a := newApp()
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	return root.Execute()
}
