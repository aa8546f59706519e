// Package driver runs lints and fixes over a target: a file, a directory
// tree or stdin.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"nixlint/internal/diag"
	"nixlint/internal/fix"
	"nixlint/internal/lint"
	"nixlint/internal/observ"
	"nixlint/internal/session"
	"nixlint/internal/source"
	"nixlint/internal/trace"
)

// Options are shared by Check and Fix.
type Options struct {
	Map      *lint.Map
	Session  *session.Info
	Discover DiscoverOptions
	// Jobs caps parallel workers; 0 means GOMAXPROCS.
	Jobs  int
	Timer *observ.Timer
	Log   logrus.FieldLogger
}

func (o *Options) logger() logrus.FieldLogger {
	if o.Log == nil {
		o.Log = discardLogger()
	}
	if o.Discover.Log == nil {
		o.Discover.Log = o.Log
	}
	return o.Log
}

func (o *Options) jobs(n int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, n))
}

// FileResult is the lint outcome of one file. Err is set when the file
// could not be read or a rule failed on it (fix.ErrInternal); the other
// files of the batch still run.
type FileResult struct {
	Path    string
	File    *source.File
	Reports []diag.Report
	Err     error
}

// FixResult is the fix outcome of one file. Source is the fixed text;
// it equals the input when Fixed is empty.
type FixResult struct {
	Path   string
	File   *source.File
	Source string
	Fixed  []diag.Fixed
	Rounds int
	Err    error
}

// Changed reports whether Source differs from the file on disk.
func (r FixResult) Changed() bool { return r.Err == nil && len(r.Fixed) > 0 }

type loaded struct {
	path string
	file *source.File
	err  error
}

// load discovers and reads the files of target sequentially, so file IDs
// follow path order.
func load(target string, fileSet *source.FileSet, opts *Options) ([]loaded, error) {
	idx := opts.Timer.Begin("discover")
	paths, err := Discover(target, opts.Discover)
	if err != nil {
		opts.Timer.End(idx, "failed")
		return nil, err
	}
	out := make([]loaded, len(paths))
	for i, p := range paths {
		f, err := LoadFile(fileSet, p)
		if err != nil {
			opts.logger().WithError(err).WithField("path", p).Warn("skipping file")
		}
		out[i] = loaded{path: p, file: f, err: err}
	}
	opts.Timer.End(idx, strconv.Itoa(len(paths))+" files")
	return out, nil
}

// forEach runs fn over files with at most opts.jobs workers. Results go to
// per-index slots, so no locking is needed.
func forEach(ctx context.Context, files []loaded, opts *Options, fn func(ctx context.Context, i int, f loaded)) error {
	if len(files) == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fn(gctx, i, f)
			return nil
		})
	}
	return g.Wait()
}

// recoverFile turns a panic raised while processing one file, typically a
// *synth.Error from a rule, into an error wrapping fix.ErrInternal. Must be
// deferred directly.
func recoverFile(log logrus.FieldLogger, path string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", r)
	}
	*errp = fmt.Errorf("%w: %w", fix.ErrInternal, err)
	log.WithError(err).WithField("path", path).Error("rule failed")
}

func lintFile(ctx context.Context, file *source.File, opts *Options) (reports []diag.Report, err error) {
	defer recoverFile(opts.logger(), file.Path, &err)
	return lint.LintFile(ctx, file, opts.Map, opts.Session).Reports, nil
}

func fixFile(ctx context.Context, file *source.File, opts *Options) (res fix.AllResult, err error) {
	defer recoverFile(opts.logger(), file.Path, &err)
	return fix.All(ctx, file.Text(), opts.Map, opts.Session)
}

// Check lints every file of target.
func Check(ctx context.Context, target string, opts Options) (*source.FileSet, []FileResult, error) {
	opts.logger()
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "check "+target)
	defer span.End("")

	fileSet := source.NewFileSetWithBase(target)
	files, err := load(target, fileSet, &opts)
	if err != nil {
		return fileSet, nil, err
	}

	results := make([]FileResult, len(files))
	idx := opts.Timer.Begin("lint")
	err = forEach(ctx, files, &opts, func(ctx context.Context, i int, f loaded) {
		if f.err != nil {
			results[i] = FileResult{Path: f.path, File: f.file, Err: f.err}
			return
		}
		results[i] = CheckFile(ctx, f.file, opts)
	})
	opts.Timer.End(idx, "")
	return fileSet, results, err
}

// CheckFile lints a file that is already loaded, e.g. stdin.
func CheckFile(ctx context.Context, file *source.File, opts Options) FileResult {
	reports, err := lintFile(ctx, file, &opts)
	return FileResult{Path: file.Path, File: file, Reports: reports, Err: err}
}

// Fix computes the fix-all fixpoint of every file of target. Nothing is
// written; see Write.
func Fix(ctx context.Context, target string, opts Options) (*source.FileSet, []FixResult, error) {
	opts.logger()
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "fix "+target)
	defer span.End("")

	fileSet := source.NewFileSetWithBase(target)
	files, err := load(target, fileSet, &opts)
	if err != nil {
		return fileSet, nil, err
	}

	results := make([]FixResult, len(files))
	idx := opts.Timer.Begin("fix")
	err = forEach(ctx, files, &opts, func(ctx context.Context, i int, f loaded) {
		if f.err != nil {
			results[i] = FixResult{Path: f.path, File: f.file, Err: f.err}
			return
		}
		results[i] = FixFile(ctx, f.file, opts)
	})
	opts.Timer.End(idx, "")
	return fileSet, results, err
}

// FixFile runs fix-all over one loaded file.
func FixFile(ctx context.Context, file *source.File, opts Options) FixResult {
	fctx, span := trace.Start(ctx, trace.ScopeFile, "fix "+file.Path)
	res, err := fixFile(fctx, file, &opts)
	span.WithExtra("rounds", strconv.Itoa(res.Rounds)).End("")
	if err != nil {
		opts.logger().WithError(err).WithField("path", file.Path).Warn("not fixed")
		res.Source = file.Text()
		res.Fixed = nil
	}
	return FixResult{
		Path:   file.Path,
		File:   file,
		Source: res.Source,
		Fixed:  res.Fixed,
		Rounds: res.Rounds,
		Err:    err,
	}
}

// SingleFile applies the one fix covering line:col of a loaded file.
func SingleFile(ctx context.Context, file *source.File, line, col int, opts Options) (res fix.SingleResult, err error) {
	defer recoverFile(opts.logger(), file.Path, &err)
	return fix.Single(ctx, line, col, file.Text(), opts.Map, opts.Session)
}
