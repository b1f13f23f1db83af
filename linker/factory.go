package linker

import (
	"github.com/gpukit/jitlink/host"
	"github.com/gpukit/jitlink/lib"
)

// NewFactory adapts a Params template into the linker construction slot of a
// host framework configuration: each invocation builds a fresh Session from
// the caller-supplied options over the template's backend, compiler,
// filesystem and diagnostics.
func NewFactory(template Params) host.LinkerFactory {
	return func(opts lib.SessionOptions) (host.Linker, error) {
		p := template
		p.Options = opts
		return New(p)
	}
}

var _ host.Linker = &Session{}
