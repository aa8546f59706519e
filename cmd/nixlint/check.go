package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"nixlint/internal/diagfmt"
	"nixlint/internal/driver"
	"nixlint/internal/fix"
	"nixlint/internal/source"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		flags  discoveryFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "check [TARGET]",
		Short: "Lints and suggestions for the nix programming language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := diagfmt.ParseFormat(format)
			if err != nil {
				return wrapErr(kindConfig, err)
			}
			target := targetArg(args)
			ctx := cmd.Context()
			rc, err := a.prepare(ctx, target, &flags)
			if err != nil {
				return err
			}
			opts := driver.Options{
				Map:      rc.m,
				Session:  rc.sess,
				Discover: driver.DiscoverOptions{Ignore: rc.cfg.Ignore, Unrestricted: flags.unrestricted},
				Jobs:     flags.jobs,
				Timer:    a.timer,
				Log:      a.log,
			}

			var results []driver.FileResult
			if flags.stdin {
				file, err := driver.LoadReader(source.NewFileSet(), "<stdin>", cmd.InOrStdin())
				if err != nil {
					return err
				}
				results = []driver.FileResult{driver.CheckFile(ctx, file, opts)}
			} else {
				_, results, err = driver.Check(ctx, target, opts)
				if err != nil {
					return err
				}
			}

			files := make([]diagfmt.FileReports, 0, len(results))
			var internal []error
			for _, r := range results {
				if errors.Is(r.Err, fix.ErrInternal) {
					internal = append(internal, fmt.Errorf("%s: %w", r.Path, r.Err))
				}
				if r.Err != nil || len(r.Reports) == 0 {
					continue
				}
				files = append(files, diagfmt.FileReports{File: r.File, Reports: r.Reports})
			}
			a.log.WithField("files", len(results)).Info("checked")

			w := cmd.OutOrStdout()
			if out == diagfmt.FormatStderr {
				w = cmd.ErrOrStderr()
			}
			if err := diagfmt.Write(w, out, files, rc.opts); err != nil {
				return err
			}
			if len(internal) > 0 {
				return wrapErr(kindLint, errors.Join(internal...))
			}
			if len(files) > 0 {
				return errLintsFound
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", "stderr", "output format (stderr|errfmt|json)")
	return cmd
}
