package rebuild

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"

	"reforge/internal/logparse"
	"reforge/internal/project"
)

// CommandBuilder runs the manifest's build command and captures its
// stderr as the diagnostic text.
type CommandBuilder struct {
	Params project.BuildParams

	mu     sync.Mutex
	stderr []byte
	ran    bool
}

// NewCommandBuilder builds a CommandBuilder for the given parameters.
func NewCommandBuilder(params project.BuildParams) *CommandBuilder {
	return &CommandBuilder{Params: params}
}

// Compile runs the build command once, in the configured directory, and
// stores whatever it wrote to stderr.
func (b *CommandBuilder) Compile(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, b.Params.Command, b.Params.Args...)
	cmd.Dir = b.Params.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	b.mu.Lock()
	b.stderr = stderr.Bytes()
	b.ran = true
	b.mu.Unlock()

	if err != nil {
		return fmt.Errorf("build command %q: %w", b.Params.Command, err)
	}
	return nil
}

// ErrorText returns the sanitised stderr of the most recent build, or
// false when there was none.
func (b *CommandBuilder) ErrorText() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ran || len(b.stderr) == 0 {
		return "", false
	}
	return logparse.Sanitize(b.stderr), true
}
