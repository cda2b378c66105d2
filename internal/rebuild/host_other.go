//go:build !unix

package rebuild

import "errors"

// SelfExec replaces the current process with a fresh instance of the
// same binary. Only unix-like platforms support in-place replacement.
type SelfExec struct{}

func (SelfExec) Exec() error {
	return errors.New("process replacement is not supported on this platform")
}
