package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Materialize bool
	Parse       bool
	Encode      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Materialize = boolEnv("DOCTREE_DEBUG_MATERIALIZE")
	d.Parse = boolEnv("DOCTREE_DEBUG_PARSE")
	d.Encode = boolEnv("DOCTREE_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Materialize() bool {
	return d.Materialize
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
