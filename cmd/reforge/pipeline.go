package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reforge/internal/dcache"
	"reforge/internal/diagfmt"
	"reforge/internal/project"
	"reforge/internal/rebuild"
)

// pipeline bundles the pieces every build-facing command needs.
type pipeline struct {
	manifest *project.Manifest
	orch     *rebuild.Orchestrator
	opts     diagfmt.PrettyOpts
}

// loadPipeline loads the manifest from baseDir (or the current directory
// when empty) and wires the orchestrator around it.
func loadPipeline(cmd *cobra.Command, baseDir string) (*pipeline, error) {
	if baseDir == "" {
		baseDir = "."
	}
	manifest, err := project.Load(baseDir)
	if err != nil {
		return nil, err
	}

	opts, err := prettyOpts(cmd)
	if err != nil {
		return nil, err
	}
	interactive, err := readUIMode(cmd)
	if err != nil {
		return nil, err
	}

	state := rebuild.NewState(manifest.BuildParams(), manifest.Overrides())
	builder := rebuild.NewCommandBuilder(state.Build)
	cache := dcache.Open(manifest.CacheDir())
	uiCollab := chooseUI(opts, interactive, projectTitle(manifest))

	return &pipeline{
		manifest: manifest,
		orch:     rebuild.New(state, builder, uiCollab, cache),
		opts:     opts,
	}, nil
}

func projectTitle(m *project.Manifest) string {
	if m.Config.Package.Name != "" {
		return m.Config.Package.Name
	}
	return m.Root
}

// errorOutcome converts the published list into the command exit status:
// errors in the list fail the command, warnings alone do not.
func (p *pipeline) errorOutcome() error {
	errs, _ := diagfmt.Count(p.orch.State.Diagnostics())
	if errs > 0 {
		return fmt.Errorf("build reported %d error(s)", errs)
	}
	return nil
}
