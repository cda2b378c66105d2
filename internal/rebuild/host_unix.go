//go:build unix

package rebuild

import (
	"fmt"
	"os"
	"syscall"
)

// SelfExec replaces the current process with a fresh instance of the
// same binary, same arguments, current environment.
type SelfExec struct{}

// Exec re-executes the current binary in place. It returns only when the
// replacement could not be initiated.
func (SelfExec) Exec() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate own binary: %w", err)
	}
	if err := syscall.Exec(exe, os.Args, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec %q: %w", exe, err)
	}
	// Unreachable: a successful exec never comes back.
	return nil
}
