package lib

import (
	"fmt"

	null "gopkg.in/guregu/null.v3"
)

// SessionOptions hold everything needed to derive the ordered flag sequence a
// native linking handle is constructed with. They are fixed at session
// creation and immutable afterwards.
type SessionOptions struct {
	// CC is the target architecture. Required; a session cannot be
	// constructed without one.
	CC TargetArch `json:"cc"`

	// MaxRegisters caps the per-thread register count, when set.
	MaxRegisters null.Int `json:"maxRegisters"`

	// LineInfo enables line-info generation in the linked binary.
	LineInfo null.Bool `json:"lineInfo"`

	// LTO selects link-time-optimization mode; required when LTO-IR inputs
	// will be submitted.
	LTO null.Bool `json:"lto"`

	// ExtraFlags are appended verbatim after the derived flags, in order.
	ExtraFlags []string `json:"extraFlags"`
}

// Validate checks that the options can produce a working native handle.
func (o SessionOptions) Validate() error {
	if o.CC == (TargetArch{}) {
		return NewConfigError("a link session requires a target architecture")
	}
	if !o.CC.Valid() {
		return NewConfigError(fmt.Sprintf("malformed target architecture %s", o.CC))
	}
	return nil
}

// Flags derives the ordered flag sequence passed to the native linker:
// architecture first, then the optional constraints in a fixed order, then
// any extra flags verbatim.
func (o SessionOptions) Flags() []string {
	flags := []string{o.CC.ArchFlag()}
	if o.MaxRegisters.Valid && o.MaxRegisters.Int64 > 0 {
		flags = append(flags, fmt.Sprintf("-maxrregcount=%d", o.MaxRegisters.Int64))
	}
	if o.LineInfo.Bool {
		flags = append(flags, "-lineinfo")
	}
	if o.LTO.Bool {
		flags = append(flags, "-lto")
	}
	return append(flags, o.ExtraFlags...)
}
