// Package diag defines the report model shared by the lint driver, the fix
// engine and the renderers.
//
// # Data model
//
// Report is the central record: one rule firing. It contains:
//
//   - Note – static one-line summary of the rule.
//   - Code – stable numeric identifier; code 0 is reserved for syntax errors.
//   - Diagnostics – ordered list of located messages.
//
// A Diagnostic may carry a Suggestion: a span to replace and the syntax
// element to put there. A nil Fix means deletion. Suggestions always refer to
// the text the report was produced from; once any edit is spliced, every other
// report from the same tree is stale.
//
// Fixed is the audit record of an applied report.
//
// # Scope
//
// Package diag does not parse, render or perform IO. Rendering lives in
// internal/diagfmt, orchestration of fixes in internal/fix.
package diag
