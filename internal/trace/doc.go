// Package trace records where nixlint spends its time: one span per run,
// per fix round and per linted file.
//
// Tracing is off by default. The CLI turns it on with
//
//	nixlint check --trace=- --trace-level=detail ./pkgs
//
// Spans nest through the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopeFile, "lint default.nix")
//	defer span.End("")
//
// Levels gate scopes: phase shows driver and pass spans, detail adds
// files, debug adds everything.
package trace
