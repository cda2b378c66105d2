// Package main implements the reforge CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"reforge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "reforge",
	Short:         "Rebuild and restart a host process after configuration changes",
	Long:          "Reforge rebuilds a host process from its reforge.toml manifest, turns the compiler log into a navigable diagnostic list, and can restart the process in place.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("ui", "auto", "interactive diagnostic list (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
