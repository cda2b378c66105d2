package rebuild

import (
	"context"
	"errors"
	"fmt"
	"os"

	"reforge/internal/envset"
)

// Restart runs the full restart sequence: optionally clear the build
// cache, recompile, apply the environment overrides permanently, then
// ask the host to replace the process.
//
// On success it does not return — the process image is gone. Every
// returned value is therefore a failure. A cache-removal failure aborts
// the sequence before recompilation starts, so no recompile side effect
// (environment scoping included) is observed in that case.
func (o *Orchestrator) Restart(ctx context.Context, host Host, clearCache bool) error {
	if clearCache {
		if err := clearCacheDir(o.State.Build.CacheDir); err != nil {
			return fmt.Errorf("failed to clear build cache: %w", err)
		}
	}

	if err := o.Recompile(ctx); err != nil {
		return err
	}

	// Deliberately redundant with the scoped application inside
	// Recompile: the scoped one covered the build subprocess, this one
	// covers the process about to be replaced, so the restarted
	// instance inherits the overrides.
	if err := envset.Apply(o.State.Env); err != nil {
		return fmt.Errorf("failed to apply environment: %w", err)
	}

	err := host.Exec()
	if err == nil {
		err = errors.New("process replacement returned without taking effect")
	}
	return err
}

// clearCacheDir removes the build-artifact cache directory recursively.
// A missing directory means there is nothing to clear.
func clearCacheDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %q: %w", dir, err)
	}
	return nil
}
