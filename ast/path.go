package ast

import "strings"

// ReplaceLast returns a copy of path with its final segment replaced
// by seg. Used to derive sibling entry points, e.g. Foo.make from
// Foo.createElement.
func ReplaceLast(path []string, seg string) []string {
	if len(path) == 0 {
		return []string{seg}
	}
	res := make([]string, len(path))
	copy(res, path)
	res[len(res)-1] = seg
	return res
}

// SuffixLast returns a copy of path with suffix appended to its final
// segment.
func SuffixLast(path []string, suffix string) []string {
	if len(path) == 0 {
		return []string{suffix}
	}
	res := make([]string, len(path))
	copy(res, path)
	res[len(res)-1] += suffix
	return res
}

// PathString joins a qualified path with dots.
func PathString(path []string) string {
	return strings.Join(path, ".")
}
