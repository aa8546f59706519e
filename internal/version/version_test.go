package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColoredPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	for in, want := range map[string]string{
		"0.1.0-dev": "0.1.0-dev",
		"1.2.3":     "1.2.3",
		"weird":     "weird",
	} {
		if got := Colored(in); got != want {
			t.Errorf("Colored(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetUsesOverrides(t *testing.T) {
	orig := []string{Version, GitCommit, BuildDate}
	defer func() { Version, GitCommit, BuildDate = orig[0], orig[1], orig[2] }()

	Version, GitCommit, BuildDate = "1.2.3", "abc123", "2024-01-15T10:30:00Z"
	info := Get()
	if info.Version != "1.2.3" || info.GitCommit != "abc123" || info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Fatalf("unexpected info %+v", info)
	}
	if info.GoVersion == "" {
		t.Fatal("go version must be set")
	}

	color.NoColor = true
	out := info.Pretty()
	for _, want := range []string{"nixlint 1.2.3", "commit: abc123", "built:  2024-01-15"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output lacks %q:\n%s", want, out)
		}
	}
}
