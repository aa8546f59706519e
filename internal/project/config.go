// Package project loads nixlint.toml and resolves the Nix version rules are
// gated on.
package project

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"nixlint/internal/session"
)

// Config mirrors nixlint.toml.
type Config struct {
	// Disabled lists lint names that never run.
	Disabled []string `toml:"disabled"`
	// Ignore holds doublestar globs, matched against paths relative to the
	// target and against base names.
	Ignore []string `toml:"ignore"`
	// NixVersion overrides detection, e.g. "2.18".
	NixVersion string `toml:"nix_version,omitempty"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default is what `nixlint dump` prints and what runs without a file.
func Default() Config {
	return Config{
		Disabled: []string{},
		Ignore:   []string{".direnv"},
	}
}

// Load reads path over the defaults. Unknown keys are an error, so typos
// do not silently disable nothing.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Decode parses TOML text; used for stdin runs and tests.
func Decode(text string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %s", ErrInvalidConfig, undecoded[0])
	}
	return cfg, nil
}

// Validate checks lint names against known and every ignore glob.
func (c Config) Validate(known []string) error {
	var errs []error
	for _, name := range c.Disabled {
		if !slices.Contains(known, name) {
			errs = append(errs, fmt.Errorf("%w: unknown lint %q in disabled", ErrInvalidConfig, name))
		}
	}
	for _, g := range c.Ignore {
		if !doublestar.ValidatePattern(g) {
			errs = append(errs, fmt.Errorf("%w: bad ignore pattern %q", ErrInvalidConfig, g))
		}
	}
	if c.NixVersion != "" {
		if _, err := session.ParseVersion(c.NixVersion); err != nil {
			errs = append(errs, fmt.Errorf("%w: nix_version: %w", ErrInvalidConfig, err))
		}
	}
	return errors.Join(errs...)
}

// Merge appends CLI ignores to the file ones.
func (c Config) Merge(ignore []string) Config {
	out := c
	out.Ignore = append(slices.Clone(c.Ignore), ignore...)
	return out
}

// Dump writes cfg as TOML.
func Dump(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
