package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nixlint/internal/diagfmt"
	"nixlint/internal/lint"
	"nixlint/internal/lint/rules"
	"nixlint/internal/observ"
	"nixlint/internal/prof"
	"nixlint/internal/project"
	"nixlint/internal/session"
	"nixlint/internal/trace"
)

func (a *app) setup(cmd *cobra.Command) error {
	switch a.colorMode {
	case "on":
		a.color = true
	case "off":
		a.color = false
	case "auto":
		a.color = isTerminal(a.errOut)
	default:
		return wrapErr(kindConfig, fmt.Errorf("--color must be auto, on or off, got %q", a.colorMode))
	}
	color.NoColor = !a.color

	a.log = logrus.New()
	a.log.SetOutput(a.errOut)
	a.log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    !a.color,
		ForceColors:      a.color,
	})
	switch {
	case a.quiet:
		a.log.SetLevel(logrus.ErrorLevel)
	case a.verbose:
		a.log.SetLevel(logrus.DebugLevel)
	default:
		a.log.SetLevel(logrus.WarnLevel)
	}

	if a.timings {
		a.timer = observ.NewTimer()
	}
	ps, err := prof.Start(a.cpuProfile, a.memProfile)
	if err != nil {
		return wrapErr(kindConfig, err)
	}
	a.prof = ps
	return a.setupTracing(cmd)
}

// setupTracing читает флаги трассировки и кладёт трейсер в контекст.
func (a *app) setupTracing(cmd *cobra.Command) error {
	level, err := trace.ParseLevel(a.traceLevel)
	if err != nil {
		return wrapErr(kindConfig, fmt.Errorf("invalid trace level: %w", err))
	}
	if level == trace.LevelOff && a.traceOut != "" {
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(a.traceFormat)
	if err != nil {
		return wrapErr(kindConfig, fmt.Errorf("invalid trace format: %w", err))
	}
	cfg := trace.Config{Level: level, Format: format, OutputPath: a.traceOut}
	if a.traceOut == "-" || (a.traceOut == "" && level > trace.LevelError) {
		cfg.Output = a.errOut
	}
	tr, err := trace.New(cfg)
	if err != nil {
		return wrapErr(kindConfig, fmt.Errorf("failed to create tracer: %w", err))
	}
	a.tracer = tr
	cmd.SetContext(trace.WithTracer(cmd.Context(), tr))
	return nil
}

// finish dumps the trace ring when the command failed, then closes sinks
// and prints timings.
func (a *app) finish(runErr error) {
	if runErr != nil && !errors.Is(runErr, errLintsFound) {
		if ring := trace.RingOf(a.tracer); ring != nil {
			fmt.Fprintln(a.errOut, "trace (most recent events):")
			if err := ring.Dump(a.errOut, trace.FormatText); err != nil {
				fmt.Fprintf(a.errOut, "trace: dump error: %v\n", err)
			}
		}
	}
	if err := a.tracer.Flush(); err != nil {
		fmt.Fprintf(a.errOut, "trace: flush error: %v\n", err)
	}
	if err := a.tracer.Close(); err != nil {
		fmt.Fprintf(a.errOut, "trace: close error: %v\n", err)
	}
	if err := a.prof.Stop(); err != nil {
		fmt.Fprintf(a.errOut, "profile: %v\n", err)
	}
	if a.timer != nil {
		fmt.Fprint(a.errOut, a.timer.Summary())
	}
}

// discoveryFlags are shared by check, fix and single.
type discoveryFlags struct {
	ignore       []string
	unrestricted bool
	configPath   string
	stdin        bool
	jobs         int
}

func (f *discoveryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.ignore, "ignore", "i", nil, "globs of files to ignore")
	cmd.Flags().BoolVarP(&f.unrestricted, "unrestricted", "u", false, "do not honour .gitignore and .git")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to nixlint.toml (default: nearest above the target)")
	cmd.Flags().BoolVar(&f.stdin, "stdin", false, "read the source from stdin")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "parallel workers (0 = GOMAXPROCS)")
}

// runContext is everything a lint run needs once flags and config are read.
type runContext struct {
	cfg  project.Config
	m    *lint.Map
	sess *session.Info
	opts diagfmt.Opts
}

func (a *app) prepare(ctx context.Context, target string, f *discoveryFlags) (*runContext, error) {
	cfg, err := a.loadConfig(target, f.configPath)
	if err != nil {
		return nil, err
	}
	cfg = cfg.Merge(f.ignore)
	if err := cfg.Validate(ruleNames()); err != nil {
		return nil, wrapErr(kindConfig, err)
	}
	v, src, err := project.ResolveVersion(ctx, cfg, a.nix)
	if err != nil {
		return nil, wrapErr(kindConfig, err)
	}
	a.log.WithFields(logrus.Fields{"nix": v.String(), "source": string(src)}).Debug("nix version")
	return &runContext{
		cfg:  cfg,
		m:    rules.Default(cfg.Disabled),
		sess: session.New(v),
		opts: diagfmt.Opts{Color: a.color},
	}, nil
}

func (a *app) loadConfig(target, explicit string) (project.Config, error) {
	path := explicit
	if path == "" {
		found, ok, err := project.Find(target)
		if err != nil {
			return project.Config{}, wrapErr(kindConfig, err)
		}
		if !ok {
			return project.Default(), nil
		}
		path = found
	}
	cfg, err := project.Load(path)
	if err != nil {
		return project.Config{}, wrapErr(kindConfig, err)
	}
	a.log.WithField("path", filepath.ToSlash(path)).Debug("loaded config")
	return cfg, nil
}

func ruleNames() []string {
	all := rules.All()
	names := make([]string, 0, len(all))
	for _, r := range all {
		names = append(names, r.Meta().Name)
	}
	return names
}

func targetArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

func (a *app) writeFixed(w io.Writer, dryRun bool, path, before, after string) error {
	if dryRun {
		return diagfmt.Diff(w, path, before, after)
	}
	_, err := io.WriteString(w, after)
	return err
}
