package project

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"nixlint/internal/session"
)

// nixProbeTimeout bounds `nix --version`.
const nixProbeTimeout = 2 * time.Second

// ErrNoNix is returned when no nix binary answers.
var ErrNoNix = errors.New("nix not available")

// Runner executes a command and returns its stdout. Tests replace it.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ParseNixVersion reads the third field of `nix --version` output,
// e.g. "nix (Nix) 2.18.1".
func ParseNixVersion(out string) (session.Version, error) {
	fields := strings.Fields(out)
	if len(fields) < 3 {
		return session.Version{}, fmt.Errorf("unexpected nix --version output %q", strings.TrimSpace(out))
	}
	return session.ParseVersion(fields[2])
}

// DetectNix asks the installed nix for its version.
func DetectNix(ctx context.Context, run Runner) (session.Version, error) {
	if run == nil {
		run = execRunner
	}
	ctx, cancel := context.WithTimeout(ctx, nixProbeTimeout)
	defer cancel()
	out, err := run(ctx, "nix", "--version")
	if err != nil {
		return session.Version{}, fmt.Errorf("%w: %w", ErrNoNix, err)
	}
	return ParseNixVersion(string(out))
}

// Source tells where a resolved version came from.
type Source string

const (
	FromConfig  Source = "config"
	FromNix     Source = "nix --version"
	FromDefault Source = "default"
)

// ResolveVersion picks nix_version, then the installed nix, then
// session.Default.
func ResolveVersion(ctx context.Context, cfg Config, run Runner) (session.Version, Source, error) {
	if cfg.NixVersion != "" {
		v, err := session.ParseVersion(cfg.NixVersion)
		if err != nil {
			return session.Version{}, FromConfig, fmt.Errorf("%w: nix_version: %w", ErrInvalidConfig, err)
		}
		return v, FromConfig, nil
	}
	if v, err := DetectNix(ctx, run); err == nil {
		return v, FromNix, nil
	}
	return session.Default, FromDefault, nil
}
