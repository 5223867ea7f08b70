package parse

import (
	"github.com/go-kit/log"
	"github.com/signadot/tinyjson/debug"
)

type parseOpts struct {
	standard bool
	logger   log.Logger
}

type ParseOption func(*parseOpts)

// Standard restricts input to RFC 8259: NaN, Infinity and the i32/i64
// suffixes fail with BadValue.
func Standard() ParseOption {
	return func(o *parseOpts) { o.standard = true }
}

// Trace logs every event delivered to the handler to logger.
func Trace(logger log.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = logger }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{}
	if debug.Parse() {
		res.logger = debug.Logger()
	}
	for _, f := range opts {
		f(res)
	}
	return res
}
