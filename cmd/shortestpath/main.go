// Command shortestpath reads one or more adjacency matrices and prints the
// minimum weight of a 0-1 path in each.
//
// Usage:
//
//	shortestpath [flags] [file]
//
// With no file, graphs are read from standard input. Each graph is
// "N" followed by N rows of N weights; 0 means no edge.
//
// Flags:
//
//	-config path     YAML (.yaml/.yml) or TOML (.toml) settings file
//	-workers n       solver pool size
//	-rounding mode   truncate | round | exact
//	-log-level lvl   debug | info | warn | error
//	-strict          reject negative, asymmetric or overflowing matrices before solving
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/shortestpath/batch"
	"github.com/katalvlaran/shortestpath/config"
	"github.com/katalvlaran/shortestpath/graphio"
	"github.com/katalvlaran/shortestpath/matrix"
	"github.com/katalvlaran/shortestpath/report"
)

// Exit codes.
const (
	exitOK    = 0
	exitInput = 1 // unreadable or malformed input
	exitUsage = 2 // bad flags or configuration
)

// shutdownSignals cancel the running batch instead of killing the process.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process globals, so tests can drive it.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// 1) Flags.
	fs := flag.NewFlagSet("shortestpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML or TOML config file")
	workers := fs.Int("workers", 0, "solver pool size (default from config)")
	rounding := fs.String("rounding", "", "truncate | round | exact (default from config)")
	logLevel := fs.String("log-level", "", "debug | info | warn | error (default from config)")
	strict := fs.Bool("strict", false, "reject negative, asymmetric or overflowing matrices")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "at most one input file may be given, got %d\n", fs.NArg())
		fs.Usage()
		return exitUsage
	}

	// 2) Config: defaults, then file, then flags.
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		cfg = loaded
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *rounding != "" {
		cfg.Rounding = *rounding
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *strict {
		cfg.Strict = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	policy, _ := cfg.Policy() // validated above
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// 3) Input.
	in, name, closeIn, err := openInput(fs.Args(), stdin)
	if err != nil {
		log.Error("open input", "err", err)
		return exitInput
	}
	defer closeIn()
	log.Info("reading input values", "from", name)

	graphs, readErr := graphio.ReadAll(in, graphio.WithMaxVertices(cfg.MaxVertices))
	if readErr != nil {
		// Graphs decoded before the failure are still solved and reported.
		log.Error("read graphs", "err", readErr, "decoded", len(graphs))
	}

	// 4) Optional strict precondition check.
	if cfg.Strict {
		for i, g := range graphs {
			if err = matrix.ValidateWeights(g); err != nil {
				log.Error("invalid graph", "graph", i+1, "err", err)
				return exitInput
			}
		}
	}

	// 5) Solve and report.
	summary, err := batch.Run(ctx, graphs, batch.WithWorkers(cfg.Workers), batch.WithLogger(log))
	if err != nil {
		log.Error("solve", "err", err)
		return exitInput
	}
	if err = report.Write(stdout, summary, policy); err != nil {
		log.Error("write report", "err", err)
		return exitInput
	}

	if readErr != nil || len(summary.Failed()) > 0 {
		return exitInput
	}

	return exitOK
}

// openInput returns the file named by args[0], or stdin when args is empty.
// run has already rejected more than one argument.
func openInput(args []string, stdin io.Reader) (io.Reader, string, func(), error) {
	if len(args) == 0 {
		return stdin, "stdin", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], nil, fmt.Errorf("unable to open %s: %w", args[0], err)
	}

	return f, args[0], func() { _ = f.Close() }, nil
}
