package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	loggerOnce sync.Once
	logger     log.Logger
)

// Logger returns the process wide logfmt logger writing to stderr.
// Debug level records pass only when one of the TJ_DEBUG_* variables
// is set.
func Logger() log.Logger {
	loggerOnce.Do(func() {
		logger = NewLogger(os.Stderr, d.Parse || d.Build || d.Write || d.CLI)
	})
	return logger
}

// NewLogger builds a logfmt logger on w with a timestamp and caller.
func NewLogger(w io.Writer, verbose bool) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	if verbose {
		return level.NewFilter(l, level.AllowDebug())
	}
	return level.NewFilter(l, level.AllowInfo())
}

// Logf writes a formatted debug message.
func Logf(msg string, args ...any) {
	level.Debug(Logger()).Log("msg", fmt.Sprintf(msg, args...))
}
