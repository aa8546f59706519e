package project

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"nixlint/internal/session"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigName), "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, ConfigName), path)

	dir, ok, err := FindRoot(filepath.Join(nested, "default.nix"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, root, dir)
}

func TestLoadOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigName)
	writeFile(t, path, "disabled = [\"empty_pattern\"]\nnix_version = \"2.18\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"empty_pattern"}, cfg.Disabled)
	require.Equal(t, []string{".direnv"}, cfg.Ignore)
	require.Equal(t, "2.18", cfg.NixVersion)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigName)
	writeFile(t, path, "disable = [\"x\"]\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorContains(t, err, "disable")
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigName)
	writeFile(t, path, "disabled = [")

	_, err := Load(path)
	require.ErrorContains(t, err, "failed to parse TOML")
}

func TestValidate(t *testing.T) {
	known := []string{"bool_comparison", "empty_let_in"}

	cfg := Default()
	cfg.Disabled = []string{"empty_let_in"}
	require.NoError(t, cfg.Validate(known))

	cfg.Disabled = []string{"nope"}
	cfg.Ignore = []string{"[bad"}
	cfg.NixVersion = "latest"
	err := cfg.Validate(known)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorContains(t, err, `unknown lint "nope"`)
	require.ErrorContains(t, err, `bad ignore pattern "[bad"`)
	require.ErrorContains(t, err, "nix_version")
}

func TestMergeDoesNotAlias(t *testing.T) {
	cfg := Default()
	merged := cfg.Merge([]string{"result"})
	require.Equal(t, []string{".direnv", "result"}, merged.Ignore)
	require.Equal(t, []string{".direnv"}, cfg.Ignore)
}

func TestDumpRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, Default()))
	require.Contains(t, buf.String(), `ignore = [".direnv"]`)
	require.NotContains(t, buf.String(), "nix_version")

	cfg, err := Decode(buf.String())
	require.NoError(t, err)
	require.Equal(t, Default().Ignore, cfg.Ignore)
	require.Empty(t, cfg.Disabled)
}

func TestParseNixVersion(t *testing.T) {
	v, err := ParseNixVersion("nix (Nix) 2.18.1\n")
	require.NoError(t, err)
	require.Equal(t, session.Version{Major: 2, Minor: 18, Patch: 1, HasPatch: true}, v)

	v, err = ParseNixVersion("nix (Nix) 2.4pre20211006_53e4794")
	require.NoError(t, err)
	require.Equal(t, session.V(2, 4), v)

	_, err = ParseNixVersion("nix")
	require.Error(t, err)
}

func TestResolveVersion(t *testing.T) {
	ctx := context.Background()
	nix := func(_ context.Context, name string, args ...string) ([]byte, error) {
		require.Equal(t, "nix", name)
		require.Equal(t, []string{"--version"}, args)
		return []byte("nix (Nix) 2.19.2\n"), nil
	}
	missing := func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("executable file not found")
	}

	cfg := Default()
	cfg.NixVersion = "2.6"
	v, src, err := ResolveVersion(ctx, cfg, missing)
	require.NoError(t, err)
	require.Equal(t, FromConfig, src)
	require.Equal(t, session.V(2, 6), v)

	v, src, err = ResolveVersion(ctx, Default(), nix)
	require.NoError(t, err)
	require.Equal(t, FromNix, src)
	require.Equal(t, "2.19.2", v.String())

	v, src, err = ResolveVersion(ctx, Default(), missing)
	require.NoError(t, err)
	require.Equal(t, FromDefault, src)
	require.Equal(t, session.Default, v)

	_, err = DetectNix(ctx, missing)
	require.ErrorIs(t, err, ErrNoNix)
}
