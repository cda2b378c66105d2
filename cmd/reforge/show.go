package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reforge/internal/dcache"
	"reforge/internal/diagfmt"
	"reforge/internal/project"
)

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show the diagnostics from the last rebuild",
	Long:  "Display the diagnostic list persisted by the most recent rebuild, without building anything. Useful right after a restart.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	baseDir := "."
	if len(args) > 0 && args[0] != "" {
		baseDir = args[0]
	}
	manifest, err := project.Load(baseDir)
	if err != nil {
		return err
	}

	records, ok, err := dcache.Open(manifest.CacheDir()).Get()
	if err != nil {
		return fmt.Errorf("failed to read cached diagnostics: %w", err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no cached diagnostics; run 'reforge rebuild' first")
		return nil
	}

	interactive, err := readUIMode(cmd)
	if err != nil {
		return err
	}
	if interactive {
		return runDiagnosticList(projectTitle(manifest), records)
	}

	opts, err := prettyOpts(cmd)
	if err != nil {
		return err
	}
	diagfmt.Pretty(cmd.OutOrStdout(), records, opts)
	if !readQuiet(cmd) {
		diagfmt.Summary(cmd.OutOrStdout(), records, opts)
	}
	return nil
}
