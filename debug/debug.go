package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Build bool
	Write bool
	CLI   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TJ_DEBUG_PARSE")
	d.Build = boolEnv("TJ_DEBUG_BUILD")
	d.Write = boolEnv("TJ_DEBUG_WRITE")
	d.CLI = boolEnv("TJ_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Parse reports whether reader events should be traced.
func Parse() bool {
	return d.Parse
}

// Build reports whether document construction should be traced.
func Build() bool {
	return d.Build
}

// Write reports whether writer events should be traced.
func Write() bool {
	return d.Write
}

func CLI() bool {
	return d.CLI
}
