package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"reforge/internal/diagfmt"
	"reforge/internal/logparse"
)

var (
	scanJSON       bool
	scanTabWidth   int
	scanShowSource bool
)

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "emit the records as JSON")
	scanCmd.Flags().IntVar(&scanTabWidth, "tab-width", diagfmt.DefaultTabWidth, "tab width for visual columns")
	scanCmd.Flags().BoolVar(&scanShowSource, "source", false, "print the offending line with a caret under the reported column")
}

var scanCmd = &cobra.Command{
	Use:   "scan [log-file]",
	Short: "Extract diagnostic records from a compiler log",
	Long:  "Parse a compiler error/warning log into structured diagnostic records. Reads the given file, or stdin when the argument is omitted or '-'.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	raw, err := readLogInput(args)
	if err != nil {
		return err
	}
	records := logparse.Scan(logparse.Sanitize(raw))

	if scanJSON {
		max, err := readMaxDiagnostics(cmd)
		if err != nil {
			return err
		}
		return diagfmt.JSON(cmd.OutOrStdout(), records, diagfmt.JSONOpts{Max: max})
	}

	opts, err := prettyOpts(cmd)
	if err != nil {
		return err
	}
	opts.TabWidth = scanTabWidth
	opts.ShowSource = scanShowSource
	diagfmt.Pretty(cmd.OutOrStdout(), records, opts)
	if !readQuiet(cmd) {
		diagfmt.Summary(cmd.OutOrStdout(), records, opts)
	}
	return nil
}

func readLogInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", args[0], err)
	}
	return raw, nil
}
