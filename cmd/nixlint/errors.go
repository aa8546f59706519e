package main

import "errors"

// errLintsFound makes check exit with status 1 without a message.
var errLintsFound = errors.New("lints found")

type errorKind string

const (
	kindConfig  errorKind = "config"
	kindLint    errorKind = "lint"
	kindFix     errorKind = "fix"
	kindExplain errorKind = "explain"
	kindSingle  errorKind = "single"
)

// cliError prints as "<kind> error: <cause>".
type cliError struct {
	kind errorKind
	err  error
}

func (e *cliError) Error() string { return string(e.kind) + " error: " + e.err.Error() }

func (e *cliError) Unwrap() error { return e.err }

func wrapErr(kind errorKind, err error) error {
	if err == nil {
		return nil
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return err
	}
	return &cliError{kind: kind, err: err}
}
