// Package rebuild orchestrates the recompile-and-restart flow: it runs
// the external build step, extracts diagnostics from its output,
// publishes them to shared state and, when asked, replaces the process.
package rebuild

import (
	"sync/atomic"

	"reforge/internal/diag"
	"reforge/internal/envset"
	"reforge/internal/project"
)

// State is the process-wide helper state. It is created once at startup
// and lives for the process lifetime; Build and Env never change after
// construction.
type State struct {
	Build project.BuildParams
	// Env is applied scoped around every build, and permanently right
	// before a restart so the replacement process inherits it.
	Env []envset.Override

	// The diagnostic list is an atomically swapped immutable slice:
	// every recompile stores a whole new slice, so a concurrent reader
	// sees either the old list or the new one, never a mix.
	diags atomic.Pointer[[]diag.Record]
}

// NewState builds the state with an empty diagnostic list.
func NewState(build project.BuildParams, env []envset.Override) *State {
	s := &State{Build: build, Env: env}
	empty := []diag.Record{}
	s.diags.Store(&empty)
	return s
}

// Diagnostics returns the last published list. The slice must be treated
// as immutable.
func (s *State) Diagnostics() []diag.Record {
	return *s.diags.Load()
}

// setDiagnostics replaces the list wholesale.
func (s *State) setDiagnostics(records []diag.Record) {
	if records == nil {
		records = []diag.Record{}
	}
	s.diags.Store(&records)
}
