package linker

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/gpukit/jitlink/lib"
)

// AssemblyExtension is the extension compiled source submissions are renamed
// to before entering the link.
const AssemblyExtension = ".ptx"

const bannerWidth = 80

// CompileAndAdd compiles device source text to intermediate assembly with
// the session's target architecture and submits the result through the
// textual-assembly path, under the source name with its extension replaced
// by AssemblyExtension.
func (s *Session) CompileAndAdd(src, name string) error {
	if s.finalized {
		return ErrFinalized
	}
	if s.compiler == nil {
		return lib.NewConfigError("a source submission requires a configured source compiler")
	}

	ptx, compileLog, err := s.compiler.Compile(src, name, s.options.CC)
	if err != nil {
		return errors.Wrapf(err, "compiling %s", name)
	}
	if compileLog != "" {
		s.logger.WithField("name", name).Debug(compileLog)
	}

	if s.dumpAssembly {
		dumpAssembly(s.assemblyOut, name, ptx)
	}

	ptxName := strings.TrimSuffix(name, filepath.Ext(name)) + AssemblyExtension
	return s.Add(lib.ObjectKindPTX, ptx, ptxName)
}

// dumpAssembly writes the raw assembly to the diagnostic sink, bracketed by
// a labeled separator banner. Tracing only; any write error is ignored.
func dumpAssembly(w io.Writer, name string, ptx []byte) {
	fmt.Fprintln(w, centerPad("ASSEMBLY "+name, bannerWidth, "-"))
	fmt.Fprintln(w, string(ptx))
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
}

func centerPad(s string, width int, pad string) string {
	margin := width - len(s)
	if margin <= 0 {
		return s
	}
	left := margin / 2
	return strings.Repeat(pad, left) + s + strings.Repeat(pad, margin-left)
}
