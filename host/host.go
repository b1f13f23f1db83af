// Package host models the hooks this layer consumes from the just-in-time
// compilation framework it plugs into: the framework's capability version,
// the active device context query, the code-unit abstraction, and the two
// pluggable construction slots (linker and codegen) that the framework
// selects implementations through.
package host

import (
	"fmt"

	"github.com/gpukit/jitlink/lib"
)

// Version is a host framework version pair.
type Version struct {
	Major int
	Minor int
}

// Less reports whether v is older than other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

//nolint:gochecknoglobals
var (
	// MinVersion is the oldest framework version whose code-unit and linker
	// hooks this layer can drive at all.
	MinVersion = Version{0, 58}
	// MinLTOVersion is the oldest framework version with the code-unit
	// introspection the link-time-optimization path needs.
	MinLTOVersion = Version{0, 59}
)

// Capabilities is what the host framework reports about itself at
// configuration time.
type Capabilities struct {
	Version Version
}

// DeviceContext is the framework's active device context.
type DeviceContext interface {
	// ComputeCapability returns the architecture of the context's device.
	ComputeCapability() (lib.TargetArch, error)
	// Device returns the context's device ordinal.
	Device() int
}

// Library is the framework's code-unit abstraction: one compiled
// function/module prior to final linking.
type Library interface {
	// LibName returns the unit's display name.
	LibName() string
	// Modules returns the unit's accumulated lower-level representations,
	// the inputs to intermediate-representation generation.
	Modules() [][]byte
	// GenOptions returns the unit's base option set for IR generation.
	// Callers must not mutate the returned map.
	GenOptions() map[string]string
}

// Linker is the framework-facing surface of a link session.
type Linker interface {
	Add(kind lib.ObjectKind, data []byte, name string) error
	AddFile(path string, kind lib.ObjectKind) error
	CompileAndAdd(src, name string) error
	Complete() ([]byte, error)
	InfoLog() string
	ErrorLog() string
}

// LinkerFactory constructs the linker the framework uses for a final link.
type LinkerFactory func(opts lib.SessionOptions) (Linker, error)

// Codegen is the framework's code-generation entry point: it produces the
// code units the framework compiles into.
type Codegen interface {
	NewLibrary(name string) (Library, error)
}

// Config carries the pluggable construction slots a framework exposes at
// configuration time. Replacing a slot is an explicit, idempotent action;
// installing the same value twice has no additional effect.
type Config struct {
	Capabilities Capabilities

	// NewLinker is the linker construction slot.
	NewLinker LinkerFactory
	// Codegen is the code-generation slot.
	Codegen Codegen
}

// InstallLinker replaces the framework's linker constructor. It fails with a
// capability error when the framework is older than MinVersion.
func (c *Config) InstallLinker(f LinkerFactory) error {
	if c.Capabilities.Version.Less(MinVersion) {
		return lib.NewCapabilityError(
			fmt.Sprintf("cannot install linker: host framework version %s is insufficient, %s is needed",
				c.Capabilities.Version, MinVersion),
			MinVersion.String(),
		)
	}
	c.NewLinker = f
	return nil
}

// InstallCodegen replaces the framework's code-generation entry point. It
// fails with a capability error when the framework is older than
// MinLTOVersion, since only those versions expose what the
// link-time-optimization path needs.
func (c *Config) InstallCodegen(g Codegen) error {
	if c.Capabilities.Version.Less(MinLTOVersion) {
		return lib.NewCapabilityError(
			fmt.Sprintf("host framework version %s needed for link-time optimization - you have %s",
				MinLTOVersion, c.Capabilities.Version),
			MinLTOVersion.String(),
		)
	}
	c.Codegen = g
	return nil
}
