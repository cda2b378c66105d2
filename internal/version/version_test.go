package version

import (
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

// GitCommit and BuildDate are normally injected via -ldflags; they only
// need to be assignable package variables.
func TestVersionOverride(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2024-01-15T10:30:00Z")
	}
}

func TestVersionIsPlainText(t *testing.T) {
	if strings.ContainsRune(Version, '\x1b') {
		t.Errorf("Version must not embed escape sequences, got %q", Version)
	}
}

func TestColorizedDisabled(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	if got := Colorized(); got != Version {
		t.Errorf("Expected plain %q with color off, got %q", Version, got)
	}
}

func TestColorizedEnabled(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = orig }()

	got := Colorized()
	if !strings.ContainsRune(got, '\x1b') {
		t.Errorf("Expected escape sequences with color on, got %q", got)
	}
	ansi := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	if stripped := ansi.ReplaceAllString(got, ""); stripped != Version {
		t.Errorf("Expected %q after stripping escapes, got %q", Version, stripped)
	}
}
