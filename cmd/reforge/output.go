package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reforge/internal/diagfmt"
)

// readColorMode resolves the --color flag against the terminal.
func readColorMode(cmd *cobra.Command) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	}
	return false, fmt.Errorf("unsupported color mode: %s (supported: auto, on, off)", value)
}

// readUIMode resolves the --ui flag: the interactive list needs both an
// allowing flag and a terminal.
func readUIMode(cmd *cobra.Command) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("ui")
	if err != nil {
		return false, fmt.Errorf("failed to get ui flag: %w", err)
	}
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	}
	return false, fmt.Errorf("unsupported ui mode: %s (supported: auto, on, off)", value)
}

func readQuiet(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return false
	}
	return quiet
}

func readMaxDiagnostics(cmd *cobra.Command) (int, error) {
	max, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return max, nil
}

func prettyOpts(cmd *cobra.Command) (diagfmt.PrettyOpts, error) {
	colorOn, err := readColorMode(cmd)
	if err != nil {
		return diagfmt.PrettyOpts{}, err
	}
	max, err := readMaxDiagnostics(cmd)
	if err != nil {
		return diagfmt.PrettyOpts{}, err
	}
	return diagfmt.PrettyOpts{Color: colorOn, Max: max}, nil
}
