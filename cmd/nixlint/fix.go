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

func newFixCmd(a *app) *cobra.Command {
	var (
		flags  discoveryFlags
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "fix [TARGET]",
		Short: "Apply every available fix in place",
		Long: "Apply all non-overlapping suggestions, reparse and repeat until nothing changes.\n" +
			"Files that do not parse are left untouched.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if flags.stdin {
				file, err := driver.LoadReader(source.NewFileSet(), "<stdin>", cmd.InOrStdin())
				if err != nil {
					return err
				}
				res := driver.FixFile(ctx, file, opts)
				if res.Err != nil && errors.Is(res.Err, fix.ErrInternal) {
					return wrapErr(kindFix, res.Err)
				}
				return a.writeFixed(cmd.OutOrStdout(), dryRun, file.Path, file.Text(), res.Source)
			}

			_, results, err := driver.Fix(ctx, target, opts)
			if err != nil {
				return err
			}
			var internal []error
			for _, r := range results {
				if r.Err != nil {
					if errors.Is(r.Err, fix.ErrInternal) {
						internal = append(internal, fmt.Errorf("%s: %w", r.Path, r.Err))
					}
					continue
				}
				if !r.Changed() {
					continue
				}
				if dryRun {
					if err := diagfmt.Diff(cmd.OutOrStdout(), r.Path, r.File.Text(), r.Source); err != nil {
						return err
					}
					continue
				}
				if err := driver.Write(r.File, r.Source); err != nil {
					a.log.WithError(err).WithField("path", r.Path).Error("failed to write")
					internal = append(internal, err)
					continue
				}
				a.log.WithField("path", r.Path).WithField("fixes", len(r.Fixed)).Info("fixed")
			}
			return wrapErr(kindFix, errors.Join(internal...))
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "print a unified diff instead of writing")
	return cmd
}
