package main

import (
	"github.com/signadot/tinyjson/debug"
)

// theLog reports errors at info level and above; TJ_DEBUG_CLI adds the
// debug records.
var theLog = debug.Logger()
