// Package nvlink defines the contract of the native device-code link
// service. The service itself is an external collaborator; everything here is
// the surface the rest of the module programs against, so alternate backends
// can be linked in as extensions.
package nvlink

import (
	"fmt"
)

// Handle is one native linking handle, created for a fixed flag sequence and
// fed artifacts until the final link. Handles are not safe for concurrent
// use; callers serialize all calls per handle.
type Handle interface {
	// AddPTX ingests textual intermediate assembly.
	AddPTX(data []byte, name string) error
	// AddCubin ingests an architecture-specific relocatable binary.
	AddCubin(data []byte, name string) error
	// AddFatbin ingests a multi-architecture binary container.
	AddFatbin(data []byte, name string) error
	// AddLibrary ingests a static archive.
	AddLibrary(data []byte, name string) error
	// AddObject ingests a relocatable object file.
	AddObject(data []byte, name string) error
	// AddLTOIR ingests link-time-optimization intermediate representation.
	AddLTOIR(data []byte, name string) error

	// Complete performs the final link and returns the linked binary.
	Complete() ([]byte, error)

	// InfoLog returns the accumulated informational log.
	InfoLog() string
	// ErrorLog returns the accumulated error log.
	ErrorLog() string
}

// OpenFunc constructs a native linking handle from an ordered flag sequence.
type OpenFunc func(flags []string) (Handle, error)

// Error is a failure reported by the native link service.
type Error struct {
	Op  string
	Msg string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	return e.Msg
}
