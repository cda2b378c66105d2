package rebuild

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"reforge/internal/dcache"
	"reforge/internal/diag"
	"reforge/internal/envset"
	"reforge/internal/logparse"
)

// Orchestrator sequences build → diagnostic extraction → publish →
// UI refresh. One orchestrator serialises its builds: a second request
// waits for the running one to finish.
type Orchestrator struct {
	State   *State
	Builder Builder
	// UI may be nil when nothing displays the list.
	UI UI
	// Cache may be nil to skip persistence.
	Cache *dcache.Cache

	sem *semaphore.Weighted
}

// New wires an orchestrator around the given state and collaborators.
func New(state *State, builder Builder, ui UI, cache *dcache.Cache) *Orchestrator {
	return &Orchestrator{
		State:   state,
		Builder: builder,
		UI:      ui,
		Cache:   cache,
		sem:     semaphore.NewWeighted(1),
	}
}

// Recompile runs one build with the overrides applied scoped, extracts
// the diagnostics from the build output and replaces the shared list.
//
// A failing build is not an error here: its diagnostic text becomes the
// published list, which is the user-visible signal. The returned error
// covers orchestration problems only — context cancellation while
// waiting for the build slot, environment application, persistence.
func (o *Orchestrator) Recompile(ctx context.Context) error {
	if err := o.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer o.sem.Release(1)

	records, err := o.build(ctx)
	if err != nil {
		return err
	}

	o.State.setDiagnostics(records)

	var persistErr error
	if err := o.Cache.Put(o.State.Diagnostics()); err != nil {
		persistErr = fmt.Errorf("failed to persist diagnostics: %w", err)
	}

	if o.UI != nil {
		o.UI.PublishDiagnostics(o.State.Diagnostics())
		o.UI.FocusDiagnostics()
	}
	return persistErr
}

// build runs the compile step with the environment overrides pushed for
// its duration. Restoration is unconditional: the defer runs whether the
// build fails or not.
func (o *Orchestrator) build(ctx context.Context) ([]diag.Record, error) {
	restore, err := envset.Push(o.State.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to apply build environment: %w", err)
	}
	defer restore()

	// The build's own failure is deliberately dropped: presence or
	// absence of diagnostic text is the only signal that matters.
	_ = o.Builder.Compile(ctx)

	records := []diag.Record{}
	if text, ok := o.Builder.ErrorText(); ok {
		records = logparse.Scan(text)
	}
	return records, nil
}
