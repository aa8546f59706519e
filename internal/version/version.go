// Package version carries build information, set with -ldflags -X.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the release of nixlint.
	Version = "0.1.0-dev"
	// GitCommit is the commit the binary was built from.
	GitCommit = ""
	// BuildDate is an ISO-8601 timestamp.
	BuildDate = ""
)

// Info is what `nixlint version` prints.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get fills the commit from the embedded VCS stamp when ldflags left it
// empty.
func Get() Info {
	info := Info{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate, GoVersion: runtime.Version()}
	if info.GitCommit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.GitCommit = s.Value
				}
			}
		}
	}
	return info
}

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders x.y.z-suffix with one color per component; color.NoColor
// turns it into plain text.
func Colored(v string) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Pretty is the multi-line human form.
func (i Info) Pretty() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "nixlint %s\n", Colored(i.Version))
	if i.GitCommit != "" {
		fmt.Fprintf(&sb, "commit: %s\n", i.GitCommit)
	}
	if i.BuildDate != "" {
		fmt.Fprintf(&sb, "built:  %s\n", i.BuildDate)
	}
	fmt.Fprintf(&sb, "go:     %s\n", i.GoVersion)
	return sb.String()
}
