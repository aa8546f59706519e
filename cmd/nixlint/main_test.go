package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const pinnedConfig = "nix_version = \"2.18\"\n"

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func makeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files["nixlint.toml"] = pinnedConfig
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestCheck(t *testing.T) {
	dir := makeProject(t, map[string]string{"a.nix": "let in x\n"})

	res := runCLI(t, "", "check", dir)
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "[W02] Warning: Useless let-in expression")
	require.Empty(t, res.stdout)

	res = runCLI(t, "", "check", dir, "--format", "errfmt")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stdout, "a.nix>1:1:W:2:This let-in expression has no entries")

	clean := makeProject(t, map[string]string{"a.nix": "x\n"})
	res = runCLI(t, "", "check", clean)
	require.Equal(t, 0, res.code, res.stderr)
}

func TestCheckStdinJSON(t *testing.T) {
	dir := makeProject(t, map[string]string{})
	res := runCLI(t, "a: f a", "check", "--stdin", "--config", filepath.Join(dir, "nixlint.toml"), "-o", "json")
	require.Equal(t, 1, res.code)

	var decoded struct {
		File   string `json:"file"`
		Report []struct {
			Code uint32 `json:"code"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &decoded))
	require.Equal(t, "<stdin>", decoded.File)
	require.Len(t, decoded.Report, 1)
	require.Equal(t, uint32(7), decoded.Report[0].Code)
}

func TestCheckConfigErrors(t *testing.T) {
	dir := makeProject(t, map[string]string{"a.nix": "x"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nixlint.toml"), []byte("disabled = [\"nope\"]\n"), 0o644))

	res := runCLI(t, "", "check", dir)
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "config error:")
	require.Contains(t, res.stderr, `unknown lint "nope"`)
}

func TestCheckDisabledRule(t *testing.T) {
	dir := makeProject(t, map[string]string{"a.nix": "let in x\n"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nixlint.toml"),
		[]byte(pinnedConfig+"disabled = [\"empty_let_in\"]\n"), 0o644))

	res := runCLI(t, "", "check", dir)
	require.Equal(t, 0, res.code, res.stderr)
}

func TestFix(t *testing.T) {
	dir := makeProject(t, map[string]string{"a.nix": "let in x\n"})
	path := filepath.Join(dir, "a.nix")

	res := runCLI(t, "", "fix", dir, "--dry-run")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "[fixed]")
	require.Contains(t, res.stdout, "+x\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "let in x\n", string(data))

	res = runCLI(t, "", "fix", dir)
	require.Equal(t, 0, res.code, res.stderr)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "x\n", string(data))
}

func TestFixStdin(t *testing.T) {
	dir := makeProject(t, map[string]string{})
	cfg := filepath.Join(dir, "nixlint.toml")

	res := runCLI(t, "!(a == b)", "fix", "--stdin", "--config", cfg)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "a != b", res.stdout)

	res = runCLI(t, "let in (", "fix", "--stdin", "--config", cfg)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "let in (", res.stdout)
}

func TestSingle(t *testing.T) {
	dir := makeProject(t, map[string]string{"a.nix": "let in (x)\n"})
	path := filepath.Join(dir, "a.nix")
	cfg := filepath.Join(dir, "nixlint.toml")

	res := runCLI(t, "let in x", "single", "--stdin", "--config", cfg, "--position", "1,1")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "x", res.stdout)

	res = runCLI(t, "", "single", path, "-p", "1,1")
	require.Equal(t, 0, res.code, res.stderr)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "(x)\n", string(data))

	res = runCLI(t, "", "single", path, "-p", "1")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "single error: position")

	res = runCLI(t, "", "single", dir, "-p", "1,1")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "is a directory")

	res = runCLI(t, "x", "single", "--stdin", "--config", cfg, "-p", "1,1")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "nothing to fix")
}

func TestExplain(t *testing.T) {
	res := runCLI(t, "", "explain", "W02")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "## What it does")
	require.Contains(t, res.stdout, "let-in")

	res = runCLI(t, "", "explain", "0")
	require.Equal(t, 0, res.code)
	require.Contains(t, res.stdout, "does not parse")

	res = runCLI(t, "", "explain", "99")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "explain error: lint with code `99` not found")

	res = runCLI(t, "", "explain", "W0x")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "explain error: invalid lint code")
}

func TestRenderExplanation(t *testing.T) {
	text := "## Example\n\n```nix\nlet in x\n```\n\nUse `x`.\n"
	require.Equal(t, text, renderExplanation(text, false))

	colored := renderExplanation(text, true)
	require.Contains(t, colored, "Example")
	require.NotContains(t, colored, "```")
	require.NotContains(t, colored, "## ")
}

func TestListDumpVersion(t *testing.T) {
	res := runCLI(t, "", "list")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "W01")
	require.Contains(t, res.stdout, "empty_list_concat")
	require.Less(t, strings.Index(res.stdout, "bool_comparison"), strings.Index(res.stdout, "empty_let_in"))

	res = runCLI(t, "", "dump")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, `ignore = [".direnv"]`)

	res = runCLI(t, "", "version", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)
	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
	require.NotEmpty(t, info["version"])

	res = runCLI(t, "", "version", "--format", "xml")
	require.Equal(t, 1, res.code)
}

func TestParsePosition(t *testing.T) {
	line, col, err := parsePosition("3, 14")
	require.NoError(t, err)
	require.Equal(t, 3, line)
	require.Equal(t, 14, col)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, _, err := parsePosition(bad)
		require.Error(t, err, bad)
	}
}

func TestTraceRingDumpedOnFailure(t *testing.T) {
	res := runCLI(t, "", "explain", "99", "--trace-level", "error")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "trace (most recent events):")
}
