// Package main provides the netformula CLI.
//
// netformula reads a trained network description and prints one formula per
// neuron per layer.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/born-ml/netformula/internal/document"
	"github.com/born-ml/netformula/internal/network"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

type config struct {
	path    string
	output  string
	sigma   string
	strict  bool
	summary bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := execute(cfg, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "netformula: %v\n", err)
		return exitError
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("netformula", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: netformula [flags] <network.yaml>")
		fmt.Fprintln(fs.Output(), "\nFlags:")
		fs.PrintDefaults()
	}

	cfg := &config{}
	fs.StringVar(&cfg.output, "o", "", "write formulas to `file` instead of stdout")
	fs.StringVar(&cfg.sigma, "sigma", "sigma", "activation function `name` used by SigmaLayer")
	fs.BoolVar(&cfg.strict, "strict", false, "require each layer's inputs to match the previous layer's outputs")
	fs.BoolVar(&cfg.summary, "summary", false, "print a per-layer summary instead of formulas")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 0:
		fmt.Fprintln(stderr, "Error: You did not specify filename.")
		fs.Usage()
		return nil, errUsage
	case 1:
		cfg.path = fs.Arg(0)
	default:
		fmt.Fprintln(stderr, "Error: Too many arguments.")
		fs.Usage()
		return nil, errUsage
	}
	if cfg.sigma == "" {
		fmt.Fprintln(stderr, "Error: -sigma must not be empty.")
		return nil, errUsage
	}
	return cfg, nil
}

func execute(cfg *config, stdout io.Writer, logger *slog.Logger) error {
	doc, err := document.Load(cfg.path)
	if err != nil {
		return err
	}
	logger.Debug("loaded document", "path", cfg.path, "layers", len(doc.Layers), "params", len(doc.Params))

	opts := []network.Option{network.WithSigmaName(cfg.sigma)}
	if cfg.strict {
		opts = append(opts, network.WithStrictArity())
	}
	net, err := doc.Network(opts...)
	if err != nil {
		return err
	}
	if err := net.Validate(); err != nil {
		return err
	}
	for _, info := range net.Summary() {
		logger.Debug("layer",
			"index", info.Index,
			"kind", info.Kind,
			"in", info.NeuronsIn,
			"out", info.NeuronsOut,
			"params", info.ParamsCount,
			"offset", info.Offset,
		)
	}

	var buf bytes.Buffer
	if cfg.summary {
		if err := writeSummary(&buf, net); err != nil {
			return err
		}
	} else if err := net.Generate(&buf); err != nil {
		return err
	}

	if cfg.output != "" {
		if err := os.WriteFile(cfg.output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Debug("wrote output", "path", cfg.output, "bytes", buf.Len())
		return nil
	}
	_, err = stdout.Write(buf.Bytes())
	return err
}

func writeSummary(w io.Writer, net *network.Network) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LAYER\tKIND\tIN\tOUT\tPARAMS\tOFFSET")
	for _, info := range net.Summary() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n",
			info.Index, info.Kind, info.NeuronsIn, info.NeuronsOut, info.ParamsCount, info.Offset)
	}
	fmt.Fprintf(tw, "total\t\t\t\t%d\t\n", net.ParamsCount())
	return tw.Flush()
}
