package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reforge/internal/dcache"
	"reforge/internal/project"
)

var cleanDiagnosticsOnly bool

func init() {
	cleanCmd.Flags().BoolVar(&cleanDiagnosticsOnly, "diagnostics-only", false, "drop only the persisted diagnostic list, keep build artifacts")
}

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove the build-artifact cache directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	baseDir := "."
	if len(args) > 0 && args[0] != "" {
		baseDir = args[0]
	}
	manifest, err := project.Load(baseDir)
	if err != nil {
		return err
	}

	cacheDir := manifest.CacheDir()
	if cleanDiagnosticsOnly {
		if err := dcache.Open(cacheDir).Drop(); err != nil {
			return fmt.Errorf("failed to drop persisted diagnostics: %w", err)
		}
		if !readQuiet(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "dropped persisted diagnostics from %s\n", cacheDir)
		}
		return nil
	}

	info, err := os.Stat(cacheDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(cmd.OutOrStdout(), "cache directory not found\n")
			return nil
		}
		return fmt.Errorf("failed to stat %q: %w", cacheDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", cacheDir)
	}
	if err := os.RemoveAll(cacheDir); err != nil {
		return fmt.Errorf("failed to remove %q: %w", cacheDir, err)
	}
	if !readQuiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", cacheDir)
	}
	return nil
}
