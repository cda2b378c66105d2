package main

import (
	"github.com/spf13/cobra"

	"reforge/internal/rebuild"
)

var restartClearCache bool

func init() {
	restartCmd.Flags().BoolVar(&restartClearCache, "clear-cache", false, "remove the build cache before rebuilding")
}

var restartCmd = &cobra.Command{
	Use:   "restart [path]",
	Short: "Rebuild the host and replace the running process",
	Long:  "Run the full restart sequence: optionally clear the build cache, rebuild, apply the environment overrides permanently, then replace this process with the freshly built host. Returns only when a step fails.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRestart,
}

func runRestart(cmd *cobra.Command, args []string) error {
	baseDir := ""
	if len(args) > 0 {
		baseDir = args[0]
	}
	p, err := loadPipeline(cmd, baseDir)
	if err != nil {
		return err
	}
	// On success this call never comes back: the process image is
	// replaced. Anything returned is a hard error.
	return p.orch.Restart(cmd.Context(), rebuild.SelfExec{}, restartClearCache)
}
