package lib

import (
	null "gopkg.in/guregu/null.v3"
)

// RuntimeOptions are process-wide diagnostic settings, read from the
// environment and passed onto the components that honor them.
type RuntimeOptions struct {
	// DumpAssembly echoes every runtime-compiled intermediate assembly text
	// to the diagnostic sink, bracketed by a banner naming the source. Pure
	// tracing, it never affects what gets linked.
	DumpAssembly null.Bool `json:"dumpAssembly" envconfig:"JITLINK_DUMP_ASSEMBLY"`

	// Backend selects the registered native link backend to use.
	Backend null.String `json:"backend" envconfig:"JITLINK_BACKEND"`
}

// Apply returns the consolidated result of overriding ro with the set fields
// of other.
func (ro RuntimeOptions) Apply(other RuntimeOptions) RuntimeOptions {
	if other.DumpAssembly.Valid {
		ro.DumpAssembly = other.DumpAssembly
	}
	if other.Backend.Valid {
		ro.Backend = other.Backend
	}
	return ro
}
