// Package project locates and loads the reforge.toml manifest that
// describes how the host rebuilds itself.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"reforge/internal/envset"
)

// ManifestName is the file the loader walks parent directories for.
const ManifestName = "reforge.toml"

const noManifestMessage = "no reforge.toml found\nplease run inside a project or pass the manifest path explicitly"

// Manifest is a loaded reforge.toml plus its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML document.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
	Cache   CacheConfig   `toml:"cache"`
	Env     []EnvEntry    `toml:"env"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// BuildConfig describes how to invoke the build step.
type BuildConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	// Dir is the working directory for the build, relative to the
	// manifest root when not absolute. Empty means the root itself.
	Dir string `toml:"dir"`
}

type CacheConfig struct {
	// Dir holds build artifacts, relative to the manifest root when not
	// absolute. Empty defaults to "cache".
	Dir string `toml:"dir"`
}

// EnvEntry is one environment override, in document order. Unset entries
// remove the variable instead of assigning it.
type EnvEntry struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
	Unset bool   `toml:"unset"`
}

// BuildParams is the orchestrator's immutable view of the build
// invocation, resolved against the manifest root.
type BuildParams struct {
	Command  string
	Args     []string
	Dir      string
	CacheDir string
}

// Find walks from startDir up to the filesystem root looking for the
// manifest.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the manifest starting from startDir.
func Load(startDir string) (*Manifest, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(noManifestMessage)
	}
	return LoadFile(path)
}

// LoadFile parses the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("build") {
		return nil, fmt.Errorf("%s: missing [build] section", path)
	}
	if cfg.Build.Command == "" {
		return nil, fmt.Errorf("%s: build.command must not be empty", path)
	}
	for i, e := range cfg.Env {
		if e.Name == "" {
			return nil, fmt.Errorf("%s: env entry %d has no name", path, i)
		}
		if e.Unset && e.Value != "" {
			return nil, fmt.Errorf("%s: env entry %q sets both value and unset", path, e.Name)
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return &Manifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

// BuildParams resolves the build invocation against the manifest root.
func (m *Manifest) BuildParams() BuildParams {
	return BuildParams{
		Command:  m.Config.Build.Command,
		Args:     append([]string(nil), m.Config.Build.Args...),
		Dir:      m.resolve(m.Config.Build.Dir, ""),
		CacheDir: m.CacheDir(),
	}
}

// CacheDir returns the absolute build-artifact cache directory.
func (m *Manifest) CacheDir() string {
	return m.resolve(m.Config.Cache.Dir, "cache")
}

// Overrides converts the env entries to envset overrides, preserving
// document order.
func (m *Manifest) Overrides() []envset.Override {
	ovs := make([]envset.Override, 0, len(m.Config.Env))
	for _, e := range m.Config.Env {
		ovs = append(ovs, envset.Override{Name: e.Name, Value: e.Value, Unset: e.Unset})
	}
	return ovs
}

func (m *Manifest) resolve(dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if dir == "" {
		return m.Root
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Root, dir)
}
