package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild [path]",
	Short: "Rebuild the host and show the diagnostic list",
	Long:  "Run the manifest's build command with the configured environment overrides, extract diagnostics from the build log and display them.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRebuild,
}

func runRebuild(cmd *cobra.Command, args []string) error {
	baseDir := ""
	if len(args) > 0 {
		baseDir = args[0]
	}
	p, err := loadPipeline(cmd, baseDir)
	if err != nil {
		return err
	}

	if !readQuiet(cmd) {
		fmt.Fprintf(os.Stderr, "rebuilding %s\n", projectTitle(p.manifest))
	}
	if err := p.orch.Recompile(cmd.Context()); err != nil {
		return err
	}
	return p.errorOutcome()
}
