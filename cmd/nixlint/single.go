package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nixlint/internal/driver"
	"nixlint/internal/source"
)

// parsePosition reads "LINE,COL".
func parsePosition(s string) (line, col int, err error) {
	l, c, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("position %q is not LINE,COL", s)
	}
	line, err = strconv.Atoi(strings.TrimSpace(l))
	if err != nil {
		return 0, 0, fmt.Errorf("bad line in %q: %w", s, err)
	}
	col, err = strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return 0, 0, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return line, col, nil
}

func newSingleCmd(a *app) *cobra.Command {
	var (
		flags    discoveryFlags
		position string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "single [TARGET] --position LINE,COL",
		Short: "Apply the one fix that covers a position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, col, err := parsePosition(position)
			if err != nil {
				return wrapErr(kindSingle, err)
			}
			target := targetArg(args)
			ctx := cmd.Context()
			rc, err := a.prepare(ctx, target, &flags)
			if err != nil {
				return err
			}

			fileSet := source.NewFileSet()
			var file *source.File
			if flags.stdin {
				file, err = driver.LoadReader(fileSet, "<stdin>", cmd.InOrStdin())
			} else {
				if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
					return wrapErr(kindSingle, fmt.Errorf("%s is a directory, single needs a file", target))
				}
				file, err = driver.LoadFile(fileSet, target)
			}
			if err != nil {
				return wrapErr(kindSingle, err)
			}

			opts := driver.Options{Map: rc.m, Session: rc.sess, Log: a.log}
			res, err := driver.SingleFile(ctx, file, line, col, opts)
			if err != nil {
				return wrapErr(kindSingle, err)
			}
			if flags.stdin || dryRun {
				return a.writeFixed(cmd.OutOrStdout(), dryRun, file.Path, file.Text(), res.Source)
			}
			if err := driver.Write(file, res.Source); err != nil {
				return wrapErr(kindSingle, err)
			}
			a.log.WithField("path", file.Path).WithField("code", res.Fixed.Code.String()).Info("fixed")
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&position, "position", "p", "", "LINE,COL of the fix, 1-based")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "print a unified diff instead of writing")
	_ = cmd.MarkFlagRequired("position")
	return cmd
}
