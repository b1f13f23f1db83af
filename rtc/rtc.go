// Package rtc defines the contract of the runtime source compiler service
// that turns device source text into intermediate assembly. The compiler is
// an external collaborator; see linker.Session.CompileAndAdd for how its
// output is fed into a link.
package rtc

import (
	"github.com/gpukit/jitlink/lib"
)

// Compiler compiles device source text into intermediate assembly for the
// given target architecture. It returns the assembly text and the compiler's
// own log.
type Compiler interface {
	Compile(src, name string, cc lib.TargetArch) (ptx []byte, log string, err error)
}
