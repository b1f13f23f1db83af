// Package nvlinktest provides an in-memory native link backend for tests.
package nvlinktest

import (
	"fmt"

	"github.com/gpukit/jitlink/lib"
	"github.com/gpukit/jitlink/nvlink"
)

// Ingestion is one recorded artifact submission.
type Ingestion struct {
	Kind lib.ObjectKind
	Data []byte
	Name string
}

// Backend is a scriptable stand-in for the native link service. The zero
// value links everything submitted to it into a synthetic binary.
type Backend struct {
	// OpenErr, when set, makes handle construction fail.
	OpenErr error
	// RejectKinds lists artifact kinds the fake refuses to ingest.
	RejectKinds []lib.ObjectKind
	// LinkedBinary is what Complete returns; when nil a synthetic payload is
	// derived from the submitted inputs.
	LinkedBinary []byte
	// CompleteErrLog, when non-empty, makes Complete fail with this text in
	// the error log.
	CompleteErrLog string

	// Opened records the flag sequence of every opened handle.
	Opened [][]string
	// Handles holds every handle the backend has produced.
	Handles []*Handle
}

// Open implements nvlink.OpenFunc.
func (b *Backend) Open(flags []string) (nvlink.Handle, error) {
	if b.OpenErr != nil {
		return nil, b.OpenErr
	}
	b.Opened = append(b.Opened, append([]string(nil), flags...))
	h := &Handle{backend: b, flags: flags}
	b.Handles = append(b.Handles, h)
	return h, nil
}

// Handle is a fake native linking handle produced by a Backend.
type Handle struct {
	backend *Backend
	flags   []string

	// Ingested records every accepted submission, in order.
	Ingested []Ingestion
	// Completes counts Complete calls that reached the native layer.
	Completes int

	infoLog  string
	errorLog string
}

func (h *Handle) add(kind lib.ObjectKind, data []byte, name string) error {
	for _, rk := range h.backend.RejectKinds {
		if rk == kind {
			h.errorLog += fmt.Sprintf("fatal   : unsupported input %s (%s)\n", name, kind)
			return &nvlink.Error{Op: "add " + kind.String(), Msg: "input rejected: " + name}
		}
	}
	h.Ingested = append(h.Ingested, Ingestion{Kind: kind, Data: data, Name: name})
	h.infoLog += fmt.Sprintf("info    : added %s input %s\n", kind, name)
	return nil
}

// AddPTX implements nvlink.Handle.
func (h *Handle) AddPTX(data []byte, name string) error {
	return h.add(lib.ObjectKindPTX, data, name)
}

// AddCubin implements nvlink.Handle.
func (h *Handle) AddCubin(data []byte, name string) error {
	return h.add(lib.ObjectKindCubin, data, name)
}

// AddFatbin implements nvlink.Handle.
func (h *Handle) AddFatbin(data []byte, name string) error {
	return h.add(lib.ObjectKindFatbin, data, name)
}

// AddLibrary implements nvlink.Handle.
func (h *Handle) AddLibrary(data []byte, name string) error {
	return h.add(lib.ObjectKindArchive, data, name)
}

// AddObject implements nvlink.Handle.
func (h *Handle) AddObject(data []byte, name string) error {
	return h.add(lib.ObjectKindObject, data, name)
}

// AddLTOIR implements nvlink.Handle.
func (h *Handle) AddLTOIR(data []byte, name string) error {
	return h.add(lib.ObjectKindLTOIR, data, name)
}

// Complete implements nvlink.Handle.
func (h *Handle) Complete() ([]byte, error) {
	h.Completes++
	if h.backend.CompleteErrLog != "" {
		h.errorLog += h.backend.CompleteErrLog
		return nil, &nvlink.Error{Op: "complete", Msg: "link failed"}
	}
	if h.backend.LinkedBinary != nil {
		return h.backend.LinkedBinary, nil
	}
	bin := []byte(fmt.Sprintf("CUBIN[%s]", h.flags))
	for _, in := range h.Ingested {
		bin = append(bin, in.Data...)
	}
	return bin, nil
}

// InfoLog implements nvlink.Handle.
func (h *Handle) InfoLog() string { return h.infoLog }

// ErrorLog implements nvlink.Handle.
func (h *Handle) ErrorLog() string { return h.errorLog }
