package rebuild

import (
	"context"

	"reforge/internal/diag"
)

// Builder runs the external build step and keeps the diagnostic text of
// the most recent attempt.
type Builder interface {
	// Compile runs one build. A non-nil error is not fatal to the
	// orchestration: whatever diagnostic text the build produced is
	// still extracted and published.
	Compile(ctx context.Context) error
	// ErrorText returns the captured diagnostic text of the last build,
	// or false when the build produced none.
	ErrorText() (string, bool)
}

// UI is the host surface that shows the diagnostic list.
type UI interface {
	// PublishDiagnostics replaces the displayed list wholesale.
	PublishDiagnostics(records []diag.Record)
	// FocusDiagnostics brings the list into view.
	FocusDiagnostics()
}

// Host performs the process replacement.
type Host interface {
	// Exec replaces the current process image. It returns only on
	// failure: on success the process is gone.
	Exec() error
}
