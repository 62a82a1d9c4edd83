// Package astjson encodes and decodes ast trees in the JSON wire
// format exchanged with the host compiler. Every node is an object
// with a "kind" discriminator; child nodes nest recursively. The
// codec round-trips positions, markers and all node kinds losslessly.
package astjson
