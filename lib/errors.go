package lib

import (
	"fmt"
)

// ConfigError is a missing or malformed construction parameter, e.g. an
// absent target architecture. It is raised before any native resource is
// created and is never retried.
type ConfigError struct {
	msg string
}

// NewConfigError returns a new ConfigError with the given message.
func NewConfigError(msg string) ConfigError {
	return ConfigError{msg: msg}
}

// Error implements the error interface.
func (e ConfigError) Error() string {
	return e.msg
}

// UnsupportedKindError is returned when an artifact kind has no ingestion
// route into the native linker.
type UnsupportedKindError struct {
	Kind ObjectKind
}

// Error implements the error interface.
func (e UnsupportedKindError) Error() string {
	return fmt.Sprintf("don't know how to link object kind %s", e.Kind)
}

// NotFoundError is returned when a file-based submission references a path
// that does not exist.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Path)
}

// LinkError is raised when the native link service rejects an input or fails
// to produce a linked binary. It preserves the native diagnostic text.
type LinkError struct {
	msg string
	log string
	err error
}

// NewLinkError wraps a native failure, attaching the native error log so the
// diagnostic survives into the error message.
func NewLinkError(msg, log string, err error) *LinkError {
	return &LinkError{msg: msg, log: log, err: err}
}

// Error implements the error interface.
func (e *LinkError) Error() string {
	if e.log != "" {
		return fmt.Sprintf("%s\n%s", e.msg, e.log)
	}
	return e.msg
}

// Log returns the native error log captured at the time of the failure.
func (e *LinkError) Log() string {
	return e.log
}

// Unwrap returns the underlying native error, if any.
func (e *LinkError) Unwrap() error {
	return e.err
}

// CapabilityError is raised when an installation action runs against a host
// framework that is absent or below the minimum supported version.
type CapabilityError struct {
	msg      string
	required string
}

// NewCapabilityError returns a new CapabilityError naming the required
// minimum framework version.
func NewCapabilityError(msg, required string) CapabilityError {
	return CapabilityError{msg: msg, required: required}
}

// Error implements the error interface.
func (e CapabilityError) Error() string {
	return e.msg
}

// RequiredVersion returns the minimum framework version the failed action
// needs.
func (e CapabilityError) RequiredVersion() string {
	return e.required
}

// Hint implements errext.HasHint.
func (e CapabilityError) Hint() string {
	return fmt.Sprintf("upgrade the host framework to version %s or newer", e.required)
}
