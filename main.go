package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// timeNow is swapped for a fixed clock in tests.
var timeNow = time.Now

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := FromArgs(args, stdout, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	setupLogger(stderr)

	report, err := NewAssembler(newSource(), cfg).Build()
	if err != nil {
		slog.Error("report aborted", "err", err)
		return 2
	}

	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			slog.Error("encode report", "err", err)
			return 1
		}
		return 0
	}

	fmt.Fprint(stdout, renderReport(report, newStyles(!cfg.NoColor)))
	return 0
}
