// Package config loads tool-level settings: where the icon
// configuration, manifest and resource tree live, and how to reach the
// app over adb. Settings layer defaults, an optional .iconshift.toml at
// the project root, and ICONSHIFT_ environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/iconshift/pkg/errors"
)

// Settings are the resolved tool-level options
type Settings struct {
	// Icons is the icon configuration document, relative to the project root
	Icons string `koanf:"icons"`
	// Manifest is the AndroidManifest.xml path, relative to the project root
	Manifest string `koanf:"manifest"`
	// ResDir is the Android resource tree, relative to the project root
	ResDir string `koanf:"res_dir"`
	// Package is the application id used for adb operations
	Package string `koanf:"package"`
	// Serial selects a specific adb device; empty means the only one
	Serial string `koanf:"serial"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"icons":    "icons.yaml",
		"manifest": filepath.Join("android", "app", "src", "main", "AndroidManifest.xml"),
		"res_dir":  filepath.Join("android", "app", "src", "main", "res"),
		"package":  "",
		"serial":   "",
	}
}

// Load resolves settings for a project root. Later layers win:
// defaults, then .iconshift.toml / iconshift.toml, then environment.
func Load(projectRoot string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default settings")
	}

	for _, name := range []string{".iconshift.toml", "iconshift.toml"} {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", path)
			}
			break
		}
	}

	if err := k.Load(env.Provider("ICONSHIFT_", ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, "ICONSHIFT_"))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load settings from environment")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	return &s, nil
}

// Project resolves the paths a loaded Settings describes against a root
type Project struct {
	Root     string
	Settings *Settings
}

// NewProject binds settings to a project root
func NewProject(root string, s *Settings) Project {
	return Project{Root: root, Settings: s}
}

// IconConfig is the absolute-ish path of the icon configuration document
func (p Project) IconConfig() string {
	return filepath.Join(p.Root, p.Settings.Icons)
}

// Manifest is the path of the AndroidManifest.xml to reconcile
func (p Project) Manifest() string {
	return filepath.Join(p.Root, p.Settings.Manifest)
}

// ResDir is the Android resource tree receiving icon bitmaps
func (p Project) ResDir() string {
	return filepath.Join(p.Root, p.Settings.ResDir)
}

// Summary is where the generated icon summary document is written
func (p Project) Summary() string {
	return filepath.Join(p.Root, "ICONS.md")
}
