package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the reforge CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI. Plain text, so it is
	// safe inside JSON output and cobra's --version line; color is
	// applied at render time via Colorized.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colorized renders Version with each semver component highlighted. A
// pre-release suffix stays plain. Anything that does not look like
// major.minor.patch comes back unchanged.
func Colorized() string {
	parts := strings.SplitN(Version, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	patch, suffix, hasSuffix := strings.Cut(parts[2], "-")
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(patch)
	if hasSuffix {
		out += "-" + suffix
	}
	return out
}
