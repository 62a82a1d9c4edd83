// Package debug provides env-gated trace switches for the rewriter.
// Switches are read once at process start; output goes to stderr.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Dispatch bool
	Children bool
	Expand   bool
	Version  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Dispatch = boolEnv("JSXFORM_DEBUG_DISPATCH")
	d.Children = boolEnv("JSXFORM_DEBUG_CHILDREN")
	d.Expand = boolEnv("JSXFORM_DEBUG_EXPAND")
	d.Version = boolEnv("JSXFORM_DEBUG_VERSION")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Dispatch() bool {
	return d.Dispatch
}
func Children() bool {
	return d.Children
}
func Expand() bool {
	return d.Expand
}
func Version() bool {
	return d.Version
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case bool, string, int, int64, float64:
		case map[string]any, []any:
			dd, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(dd)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
