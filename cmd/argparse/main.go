package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/containerd/log"
	"github.com/sirupsen/logrus"

	"github.com/kurzatem/argparser/internal/pkg/cli"
	"github.com/kurzatem/argparser/internal/pkg/manifest"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	Manifest string `cli_position:"0" cli_description:"manifest describing the arguments (.json, .yaml, .yml or .toml)"`
	Format   string `cli_flag:"format" cli_flag_alternatives:"f" cli_description:"output format: table or json"`
	Strict   bool   `cli_flag:"strict" cli_description:"fail on tokens that name no argument"`
	Convert  bool   `cli_flag:"convert" cli_flag_alternatives:"c" cli_description:"convert values to the declared types"`
	LogLevel string `cli_flag:"log-level" cli_description:"log level (trace, debug, info, warn, error)"`
	Help     bool   `cli_flag:"help" cli_flag_alternatives:"h" cli_description:"show this help"`
}

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)
	ctx = log.WithLogger(ctx, logrus.NewEntry(logger).WithField("cmd", "argparse"))

	err := execute(ctx, args, stdout)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, new(usageError)):
		fmt.Fprintf(stderr, "argparse: %v\n\n", err)
		printUsage(stderr)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "argparse: %v\n", err)
		return exitError
	}
}

// splitArgs separates the tool's own arguments from the tokens after "--".
func splitArgs(args []string) (own, tokens []string) {
	i := slices.Index(args, "--")
	if i < 0 {
		return args, nil
	}
	return args[:i], args[i+1:]
}

func parseOptions(args []string) (options, error) {
	opts := options{Format: "table", LogLevel: "warn"}
	if _, err := cli.ParseInto(&opts, args, cli.WithPrefixes("--", "-"), cli.WithStrict(true)); err != nil {
		return opts, usageError{err}
	}
	if opts.Help {
		return opts, nil
	}
	if opts.Manifest == "" {
		return opts, usageError{errors.New("a manifest is required")}
	}
	switch opts.Format {
	case "table", "json":
	default:
		return opts, usageError{fmt.Errorf("unknown format %q", opts.Format)}
	}
	return opts, nil
}

func execute(ctx context.Context, args []string, stdout io.Writer) error {
	own, tokens := splitArgs(args)
	opts, err := parseOptions(own)
	if err != nil {
		return err
	}
	if opts.Help {
		printUsage(stdout)
		return nil
	}
	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		return usageError{fmt.Errorf("log level: %w", err)}
	}
	log.G(ctx).Logger.SetLevel(level)

	m, err := manifest.Load(ctx, opts.Manifest)
	if err != nil {
		return err
	}
	if opts.Strict {
		m.Strict = true
	}
	p, err := m.Build()
	if err != nil {
		return err
	}
	log.G(ctx).WithField("tokens", len(tokens)).Debug("parsing")

	parsed, err := p.Parse(tokens)
	if err != nil {
		return err
	}
	rows, err := collect(parsed, opts.Convert)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return renderJSON(stdout, rows, parsed.Unclaimed)
	}
	renderTable(stdout, rows, parsed.Unclaimed)
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: argparse MANIFEST [options] -- TOKENS...")
	fmt.Fprintln(w)
	descs, err := cli.Describe(&options{})
	if err != nil {
		return
	}
	for _, d := range descs {
		info := d.Payload().(cli.FieldInfo)
		name := strings.ToUpper(info.Name)
		if aliases := d.Aliases(); len(aliases) > 0 {
			spelled := make([]string, len(aliases))
			for i, a := range aliases {
				if len(a) == 1 {
					spelled[i] = "-" + a
				} else {
					spelled[i] = "--" + a
				}
			}
			name = strings.Join(spelled, ", ")
		}
		fmt.Fprintf(w, "  %-22s %s\n", name, info.Description)
	}
}
