// Package ast defines the syntax tree exchanged between the host
// compiler and the jsxform rewriter.
//
// The tree is a closed tagged union: expression kinds implement Node,
// declaration kinds implement Decl. The host parser produces trees,
// jsxform consumes and replaces them, and the host printer takes the
// result back. Nodes carry source positions and attribute markers; the
// rewriter keys off the "jsx", "component", "componentName" and
// "jsxConfig" marker names and passes every other marker through
// untouched.
//
// Sequences authored in source are encoded the ML way, as Construct
// chains: a "::" construct with a head and tail payload, terminated by
// the "[]" construct. ListLit is a distinct representation reserved
// for array literals. The "()" construct is the unit value.
package ast
