// Package envset applies ordered environment-variable overrides, either
// permanently or scoped with guaranteed restoration.
package envset

import (
	"fmt"
	"os"
)

// Override describes one environment change. Unset removes the variable
// instead of assigning Value.
type Override struct {
	Name  string
	Value string
	Unset bool
}

// Apply sets the overrides on the process environment permanently, in
// order.
func Apply(overrides []Override) error {
	for _, o := range overrides {
		if err := apply(o); err != nil {
			return err
		}
	}
	return nil
}

// Push applies the overrides and returns a restore function that puts
// every touched variable back to its previous state. Callers run restore
// in a defer so restoration happens on every exit path. If an override
// fails midway, the already-applied prefix is rolled back and an error
// is returned with a nil restore.
func Push(overrides []Override) (restore func(), err error) {
	type saved struct {
		name    string
		value   string
		present bool
	}
	prev := make([]saved, 0, len(overrides))

	undo := func() {
		// Reverse order so repeated names unwind to the oldest value.
		for i := len(prev) - 1; i >= 0; i-- {
			s := prev[i]
			var err error
			if s.present {
				err = os.Setenv(s.name, s.value)
			} else {
				err = os.Unsetenv(s.name)
			}
			if err != nil {
				// Restoration must not fail; a platform that cannot set
				// its own environment leaves us no sane recovery.
				panic(fmt.Errorf("failed to restore environment variable %q: %w", s.name, err))
			}
		}
	}

	for _, o := range overrides {
		v, present := os.LookupEnv(o.Name)
		prev = append(prev, saved{name: o.Name, value: v, present: present})
		if err := apply(o); err != nil {
			prev = prev[:len(prev)-1]
			undo()
			return nil, err
		}
	}
	return undo, nil
}

func apply(o Override) error {
	if o.Unset {
		if err := os.Unsetenv(o.Name); err != nil {
			return fmt.Errorf("failed to unset %q: %w", o.Name, err)
		}
		return nil
	}
	if err := os.Setenv(o.Name, o.Value); err != nil {
		return fmt.Errorf("failed to set %q: %w", o.Name, err)
	}
	return nil
}
