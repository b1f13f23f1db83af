// Package codegen implements the cross-module link-time-optimization path: a
// code-unit wrapper that emits per-architecture LTO intermediate
// representation instead of a final binary, and the codegen factory that
// makes the host framework produce such units.
package codegen

import (
	"sync"

	"github.com/gpukit/jitlink/host"
	"github.com/gpukit/jitlink/lib"
)

// Generator converts a code unit's accumulated lower-level representations
// into intermediate representation, driven by an option set. It is the
// IR-compiler collaborator of this layer.
type Generator interface {
	Generate(modules [][]byte, options map[string]string) ([]byte, error)
}

// GenLTOOption is the generation option that switches the IR compiler into
// link-time-optimization output mode. Present with an empty value.
const GenLTOOption = "gen-lto"

// ArchOption is the generation option naming the target architecture.
const ArchOption = "arch"

// LTOLibrary extends a host code unit so that, instead of lowering straight
// to an architecture-specific binary, it emits link-time-optimization
// intermediate representation on demand and memoizes it per architecture.
// The underlying unit is immutable after construction, so entries are never
// invalidated.
type LTOLibrary struct {
	host.Library

	gen    Generator
	devctx host.DeviceContext

	mu    sync.Mutex
	cache map[lib.TargetArch][]byte
}

// NewLTOLibrary wraps base. devctx may be nil if callers always pass an
// explicit architecture to LTOIR.
func NewLTOLibrary(base host.Library, gen Generator, devctx host.DeviceContext) *LTOLibrary {
	return &LTOLibrary{
		Library: base,
		gen:     gen,
		devctx:  devctx,
		cache:   make(map[lib.TargetArch][]byte),
	}
}

// LTOIR returns the unit's link-time-optimization intermediate representation
// for cc, generating it on first use and returning the cached payload
// afterwards. Passing the zero TargetArch resolves the architecture from the
// active device context.
func (l *LTOLibrary) LTOIR(cc lib.TargetArch) ([]byte, error) {
	if cc == (lib.TargetArch{}) {
		if l.devctx == nil {
			return nil, lib.NewConfigError("no target architecture given and no device context to resolve one from")
		}
		resolved, err := l.devctx.ComputeCapability()
		if err != nil {
			return nil, err
		}
		cc = resolved
	}

	// Check-or-insert in one critical section; generation for distinct
	// architectures is serialized, which the one-shot cost structure makes
	// acceptable.
	l.mu.Lock()
	defer l.mu.Unlock()

	if ltoir, ok := l.cache[cc]; ok {
		return ltoir, nil
	}

	options := make(map[string]string, len(l.GenOptions())+2)
	for k, v := range l.GenOptions() {
		options[k] = v
	}
	options[ArchOption] = cc.ArchName()
	options[GenLTOOption] = ""

	ltoir, err := l.gen.Generate(l.Modules(), options)
	if err != nil {
		return nil, err
	}
	l.cache[cc] = ltoir
	return ltoir, nil
}

var _ host.Library = &LTOLibrary{}
