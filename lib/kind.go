package lib

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ObjectKind identifies the format of a compiled device-code artifact that
// can be fed to a link session.
type ObjectKind int

// The set of artifact kinds the native linker knows how to ingest.
const (
	ObjectKindUnknown ObjectKind = iota
	// ObjectKindPTX is textual intermediate assembly, the usual output of
	// runtime compilation.
	ObjectKindPTX
	// ObjectKindCubin is a relocatable binary for one specific architecture.
	ObjectKindCubin
	// ObjectKindFatbin is a container with binary variants for several
	// architectures.
	ObjectKindFatbin
	// ObjectKindArchive is a static library of relocatable objects.
	ObjectKindArchive
	// ObjectKindObject is a single host-relocatable object file.
	ObjectKindObject
	// ObjectKindLTOIR is link-time-optimization intermediate representation,
	// produced by codegen.LTOLibrary and consumed at final link.
	ObjectKindLTOIR
)

// FileExtensionMap maps a file extension (without the leading dot) to the
// artifact kind the native linker expects for it.
//
//nolint:gochecknoglobals
var FileExtensionMap = map[string]ObjectKind{
	"ptx":    ObjectKindPTX,
	"cubin":  ObjectKindCubin,
	"fatbin": ObjectKindFatbin,
	"a":      ObjectKindArchive,
	"o":      ObjectKindObject,
	"ltoir":  ObjectKindLTOIR,
}

// KindForPath classifies a file path by its extension. Paths with an unmapped
// or missing extension classify as ObjectKindUnknown.
func KindForPath(path string) ObjectKind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if kind, ok := FileExtensionMap[ext]; ok {
		return kind
	}
	return ObjectKindUnknown
}

func (k ObjectKind) String() string {
	switch k {
	case ObjectKindPTX:
		return "ptx"
	case ObjectKindCubin:
		return "cubin"
	case ObjectKindFatbin:
		return "fatbin"
	case ObjectKindArchive:
		return "archive"
	case ObjectKindObject:
		return "object"
	case ObjectKindLTOIR:
		return "ltoir"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// DefaultName returns the placeholder display name used when an artifact of
// this kind is submitted without one.
func (k ObjectKind) DefaultName() string {
	switch k {
	case ObjectKindPTX:
		return "<jit-ptx>"
	case ObjectKindCubin:
		return "<external-cubin>"
	case ObjectKindFatbin:
		return "<external-fatbin>"
	case ObjectKindArchive:
		return "<external-archive>"
	case ObjectKindObject:
		return "<external-object>"
	case ObjectKindLTOIR:
		return "<external-ltoir>"
	default:
		return "<unknown>"
	}
}
