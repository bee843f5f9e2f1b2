// Package debug provides env-var-gated debug switches for tree
// operations. Logging goes to stderr and is meant for humans chasing
// a rewrite gone wrong, not for machine consumption.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Replace bool
	Copy    bool
	Query   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Replace = boolEnv("MDTREE_DEBUG_REPLACE")
	d.Copy = boolEnv("MDTREE_DEBUG_COPY")
	d.Query = boolEnv("MDTREE_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Replace() bool {
	return d.Replace
}
func Copy() bool {
	return d.Copy
}
func Query() bool {
	return d.Query
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
