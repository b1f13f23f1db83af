// Package linker implements the device-code linking session: it accumulates
// compiled artifacts of heterogeneous kinds against one native linking handle
// and finalizes them into a single loadable binary for one target
// architecture.
package linker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/gpukit/jitlink/lib"
	"github.com/gpukit/jitlink/nvlink"
	"github.com/gpukit/jitlink/rtc"
)

// ErrFinalized is returned for any submission or finalize call made after a
// session has already been finalized.
var ErrFinalized = errors.New("link session already finalized")

// Params contains everything needed to construct a Session.
type Params struct {
	// Options derive the flag sequence the native handle is opened with.
	Options lib.SessionOptions

	// Open constructs the native linking handle. Required.
	Open nvlink.OpenFunc

	// Compiler turns device source text into intermediate assembly. Only
	// needed when CompileAndAdd is used.
	Compiler rtc.Compiler

	// FS is the filesystem AddFile reads from. Defaults to the OS
	// filesystem.
	FS afero.Fs

	Logger logrus.FieldLogger

	// DumpAssembly echoes runtime-compiled assembly to AssemblyOut.
	DumpAssembly bool
	// AssemblyOut is the diagnostic sink for DumpAssembly. Defaults to
	// standard output.
	AssemblyOut io.Writer
}

// Session owns one native linking handle for one target architecture.
// Lifecycle: created, fed zero or more inputs, finalized exactly once,
// discarded. Sessions are not safe for concurrent use.
type Session struct {
	options lib.SessionOptions
	flags   []string
	handle  nvlink.Handle

	compiler     rtc.Compiler
	fs           afero.Fs
	logger       logrus.FieldLogger
	dumpAssembly bool
	assemblyOut  io.Writer

	finalized bool
}

// New validates the options, derives the native flag sequence and opens the
// native handle with it. Option problems surface as configuration errors
// before any native resource exists; a native construction failure surfaces
// as a link error.
func New(p Params) (*Session, error) {
	if err := p.Options.Validate(); err != nil {
		return nil, err
	}
	if p.Open == nil {
		return nil, lib.NewConfigError("a link session requires a native link backend")
	}
	if p.FS == nil {
		p.FS = afero.NewOsFs()
	}
	if p.Logger == nil {
		p.Logger = logrus.StandardLogger()
	}
	if p.AssemblyOut == nil {
		p.AssemblyOut = os.Stdout
	}

	flags := p.Options.Flags()
	handle, err := p.Open(flags)
	if err != nil {
		return nil, lib.NewLinkError(
			fmt.Sprintf("could not open a native link handle for %v", flags), "", err)
	}

	return &Session{
		options:      p.Options,
		flags:        flags,
		handle:       handle,
		compiler:     p.Compiler,
		fs:           p.FS,
		logger:       p.Logger.WithField("cc", p.Options.CC),
		dumpAssembly: p.DumpAssembly,
		assemblyOut:  p.AssemblyOut,
	}, nil
}

// CC returns the session's target architecture.
func (s *Session) CC() lib.TargetArch {
	return s.options.CC
}

// Flags returns the flag sequence the native handle was opened with.
func (s *Session) Flags() []string {
	return append([]string(nil), s.flags...)
}

// ingest returns the native entry point for kind, or nil when the kind has
// no ingestion route. Textual assembly keeps its dedicated path.
func (s *Session) ingest(kind lib.ObjectKind) func([]byte, string) error {
	switch kind {
	case lib.ObjectKindPTX:
		return s.handle.AddPTX
	case lib.ObjectKindCubin:
		return s.handle.AddCubin
	case lib.ObjectKindFatbin:
		return s.handle.AddFatbin
	case lib.ObjectKindArchive:
		return s.handle.AddLibrary
	case lib.ObjectKindObject:
		return s.handle.AddObject
	case lib.ObjectKindLTOIR:
		return s.handle.AddLTOIR
	default:
		return nil
	}
}

// Add submits an in-memory artifact of the given kind. An empty name gets
// the kind's placeholder name. A native rejection comes back as a link error
// carrying the native error log.
func (s *Session) Add(kind lib.ObjectKind, data []byte, name string) error {
	if s.finalized {
		return ErrFinalized
	}
	fn := s.ingest(kind)
	if fn == nil {
		return lib.UnsupportedKindError{Kind: kind}
	}
	if name == "" {
		name = kind.DefaultName()
	}

	s.logger.WithFields(logrus.Fields{"kind": kind, "name": name, "size": len(data)}).
		Debug("Adding link input")
	if err := fn(data, name); err != nil {
		return lib.NewLinkError(
			fmt.Sprintf("could not link %s input %s", kind, name), s.handle.ErrorLog(), err)
	}
	return nil
}

// AddFile reads path fully into memory and submits it as an artifact of the
// given kind, using the file's base name as the display name. A missing path
// is a not-found error; a kind without an ingestion route is an
// unsupported-kind error, raised before any native call.
func (s *Session) AddFile(path string, kind lib.ObjectKind) error {
	if s.finalized {
		return ErrFinalized
	}
	if s.ingest(kind) == nil {
		return lib.UnsupportedKindError{Kind: kind}
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return lib.NotFoundError{Path: path}
		}
		return errors.Wrapf(err, "reading link input %s", path)
	}

	return s.Add(kind, data, filepath.Base(path))
}

// Complete performs the final link and returns the linked binary. It may be
// called exactly once; afterwards the session only serves its logs. A native
// link failure comes back as a link error carrying the native error log.
func (s *Session) Complete() ([]byte, error) {
	if s.finalized {
		return nil, ErrFinalized
	}
	s.finalized = true

	bin, err := s.handle.Complete()
	if err != nil {
		return nil, lib.NewLinkError("linking failed", s.handle.ErrorLog(), err)
	}
	s.logger.WithField("size", len(bin)).Debug("Link complete")
	return bin, nil
}

// InfoLog returns the native handle's informational log. Valid at any point
// in the session lifecycle, including after Complete.
func (s *Session) InfoLog() string {
	return s.handle.InfoLog()
}

// ErrorLog returns the native handle's error log. Valid at any point in the
// session lifecycle, including after Complete.
func (s *Session) ErrorLog() string {
	return s.handle.ErrorLog()
}
