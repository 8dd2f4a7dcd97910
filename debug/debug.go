// Package debug turns on diagnostic output from environment variables.
// Each flag is read once at startup; output goes to standard error.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// out receives all debug output.
var out io.Writer = os.Stderr

type debug struct {
	Parse bool
	Build bool
	Load  bool
	Eval  bool
	Diff  bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("ARC_DEBUG_PARSE")
	d.Build = boolEnv("ARC_DEBUG_BUILD")
	d.Load = boolEnv("ARC_DEBUG_LOAD")
	d.Eval = boolEnv("ARC_DEBUG_EVAL")
	d.Diff = boolEnv("ARC_DEBUG_DIFF")
	d.LSP = boolEnv("ARC_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Parse reports whether parse trees should be dumped.
func Parse() bool {
	return d.Parse
}

// Build reports whether document building steps should be logged.
func Build() bool {
	return d.Build
}
func Load() bool {
	return d.Load
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
func LSP() bool {
	return d.LSP
}

// LogAny writes v as one line of JSON, falling back to %v for values
// JSON cannot hold.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
