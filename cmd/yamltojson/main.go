// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program yamltojson reads a single YAML document from stdin and writes the
// equivalent JSON to stdout.
//
// All scalars are rendered as JSON strings. Aliases are expanded to copies of
// their anchored values, and "<<" merge keys are applied. If the input cannot
// be parsed, whatever was converted before the error is still written, and the
// program exits with status 1.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/creachadair/yamljson"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and I/O streams, and
// returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var verbose bool
	logger := newLogger(stderr, log.WarnLevel)

	status := 0
	root := &cobra.Command{
		Use:   "yamltojson [-v] < input.yaml > output.json",
		Short: "Convert a YAML document to JSON",
		Long: `Read a single YAML document from stdin and write the equivalent JSON to stdout.

Scalars become JSON strings, sequences become arrays, and mappings become
objects. Aliases are replaced by copies of their anchored values, and "<<"
merge keys copy the members of the referenced mappings.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			status = convert(logger, cmd.InOrStdin(), cmd.OutOrStdout(), verbose)
			return nil
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each parse event to stderr")
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n%s", err, root.UsageString())
		return 2
	}
	return status
}

// newLogger creates a logger writing to w that filters messages below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "yamltojson",
	})
}

// convert translates YAML from in to JSON on out, and returns the exit status.
func convert(logger *log.Logger, in io.Reader, out io.Writer, trace bool) int {
	t := yamljson.NewTransducer()
	if trace {
		t.SetTrace(func(ev yamljson.Event, from, to yamljson.State) {
			logger.Debug(ev.String(), "pos", ev.Pos, "from", from, "to", to, "depth", t.Depth())
		})
	}
	err := t.Run(yamljson.NewSource(in))

	// After an invariant violation the partial tree is not trustworthy, so
	// nothing is written.
	var ie *yamljson.InvariantError
	if errors.As(err, &ie) {
		logger.Error("Conversion failed", "err", err)
		return 1
	}
	if werr := yamljson.WriteJSON(out, t.Root()); werr != nil {
		logger.Error("Writing output failed", "err", werr)
		return 1
	}
	if err != nil {
		logger.Error("Parse failed", "err", err)
		return 1
	}
	logger.Debug("Conversion complete")
	return 0
}
