package codegen

import (
	"fmt"

	"github.com/gpukit/jitlink/host"
	"github.com/gpukit/jitlink/lib"
)

// LTOCodegen is a drop-in replacement for the host framework's default
// code-generation entry point: every unit it produces is an LTOLibrary
// wrapping what the default entry point would have produced. It carries no
// other logic.
type LTOCodegen struct {
	base   host.Codegen
	gen    Generator
	devctx host.DeviceContext
}

// New returns an LTOCodegen deferring unit construction to base. It fails
// fast with a capability error when the framework is older than
// host.MinLTOVersion.
func New(base host.Codegen, gen Generator, devctx host.DeviceContext, caps host.Capabilities) (*LTOCodegen, error) {
	if caps.Version.Less(host.MinLTOVersion) {
		return nil, lib.NewCapabilityError(
			fmt.Sprintf("host framework version %s needed for link-time optimization - you have %s",
				host.MinLTOVersion, caps.Version),
			host.MinLTOVersion.String(),
		)
	}
	return &LTOCodegen{base: base, gen: gen, devctx: devctx}, nil
}

// NewLibrary implements host.Codegen.
func (c *LTOCodegen) NewLibrary(name string) (host.Library, error) {
	base, err := c.base.NewLibrary(name)
	if err != nil {
		return nil, err
	}
	return NewLTOLibrary(base, c.gen, c.devctx), nil
}

var _ host.Codegen = &LTOCodegen{}
