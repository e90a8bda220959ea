package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

// Config carries the validated runtime options.
type Config struct {
	TopN     int
	Interval time.Duration
	JSON     bool
	NoColor  bool
}

func DefaultConfig() Config {
	return Config{TopN: 5, Interval: time.Second}
}

// FromArgs parses and validates the CLI flags. Help goes to stdout and is
// signalled with flag.ErrHelp; every diagnostic goes to stderr.
func FromArgs(args []string, stdout, stderr io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("sysreport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {} // errors get one diagnostic line; full usage only on -h

	topN := fs.Int("n", cfg.TopN, "rows in each top-process list")
	window := fs.Float64("i", cfg.Interval.Seconds(), "CPU sampling window in seconds")
	jsonOut := fs.Bool("json", false, "render the report as JSON")
	noColor := fs.Bool("no-color", false, "disable styled output")

	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout, fs)
		return cfg, err
	}
	if err != nil {
		return cfg, err
	}

	if *topN <= 0 {
		err := fmt.Errorf("-n must be a positive integer (got %d)", *topN)
		fmt.Fprintln(stderr, "sysreport:", err)
		return cfg, err
	}
	if *window < 0 {
		err := fmt.Errorf("-i must be >= 0 seconds (got %g)", *window)
		fmt.Fprintln(stderr, "sysreport:", err)
		return cfg, err
	}

	cfg.TopN = *topN
	cfg.Interval = time.Duration(*window * float64(time.Second))
	cfg.JSON = *jsonOut
	cfg.NoColor = *noColor
	return cfg, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: sysreport [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Prints a point-in-time health report for this host.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success or help, 1 bad arguments, 2 CPU counters unreadable.")
}
