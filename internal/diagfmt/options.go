package diagfmt

import (
	"fmt"
	"strings"

	"nixlint/internal/diag"
	"nixlint/internal/source"
)

// Format selects the renderer of check output.
type Format uint8

const (
	// FormatStderr is the boxed human-readable form.
	FormatStderr Format = iota
	// FormatErrfmt is one line per diagnostic, for editors.
	FormatErrfmt
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatStderr:
		return "stderr"
	case FormatErrfmt:
		return "errfmt"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// ParseFormat reads a --format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stderr":
		return FormatStderr, nil
	case "errfmt":
		return FormatErrfmt, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("unknown output format %q (want stderr, errfmt or json)", s)
}

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto prints paths as they were given.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// Opts configures every renderer.
type Opts struct {
	Color    bool
	PathMode PathMode
	// BaseDir anchors PathModeRelative; empty means the working directory.
	BaseDir string
}

// FileReports is what one file contributes to the output.
type FileReports struct {
	File    *source.File
	Reports []diag.Report
}

func displayPath(f *source.File, opts Opts) string {
	switch opts.PathMode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", opts.BaseDir)
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.Path
	}
}
