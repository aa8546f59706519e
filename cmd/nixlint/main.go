package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nixlint/internal/observ"
	"nixlint/internal/prof"
	"nixlint/internal/project"
	"nixlint/internal/trace"
	"nixlint/internal/version"
)

// app: состояние одного запуска; тесты создают свой экземпляр
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	colorMode   string
	quiet       bool
	verbose     bool
	timings     bool
	traceOut    string
	traceLevel  string
	traceFormat string
	cpuProfile  string
	memProfile  string

	color  bool
	log    *logrus.Logger
	tracer trace.Tracer
	timer  *observ.Timer
	prof   *prof.Session
	// nix answers `nix --version`; nil runs the real binary.
	nix project.Runner
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut, tracer: trace.Nop}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "nixlint",
		Short:         "Lints and suggestions for the Nix programming language",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	pf.BoolVar(&a.quiet, "quiet", false, "only log errors")
	pf.BoolVar(&a.verbose, "verbose", false, "log progress and skipped files")
	pf.BoolVar(&a.timings, "timings", false, "print phase timings to stderr")
	pf.StringVar(&a.traceOut, "trace", "", "write trace events to file (- for stderr)")
	pf.StringVar(&a.traceLevel, "trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.StringVar(&a.traceFormat, "trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.StringVar(&a.cpuProfile, "cpuprofile", "", "write a CPU profile to file")
	pf.StringVar(&a.memProfile, "memprofile", "", "write a heap profile to file on exit")

	root.AddCommand(
		newCheckCmd(a),
		newFixCmd(a),
		newSingleCmd(a),
		newExplainCmd(a),
		newDumpCmd(a),
		newListCmd(a),
		newVersionCmd(a),
	)
	return root
}

// run executes args and returns the process exit status.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := newApp(in, out, errOut)
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.Execute()
	a.finish(err)

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errLintsFound):
		return 1
	default:
		fmt.Fprintln(errOut, err)
		return 1
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// isTerminal проверяет, является ли w терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
