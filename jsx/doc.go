// Package jsx rewrites markup-marked syntax trees into React-style
// runtime element calls and expands component-marked bindings.
//
// The rewriter runs as a single sequential depth-first pass over one
// compilation unit. A file-level jsxConfig declaration selects the
// output convention (v2 or v3) before any transform runs; plain-tag
// calls, user-component calls and fragments each rewrite into the
// convention's creation calls, and @component bindings expand into a
// synthesized props type, a props-constructor external and a wrapper
// that destructures the incoming props record.
//
// Any validity failure aborts the pass and surfaces as a *diag.Error
// wrapping one of the package sentinels.
package jsx
