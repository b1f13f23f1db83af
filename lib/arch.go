package lib

import (
	"fmt"
	"strconv"
	"strings"
)

// TargetArch is a GPU compute-capability version, e.g. (7, 5) for sm_75. It
// selects the architecture the native linker emits code for and keys the
// per-architecture LTO-IR cache.
type TargetArch struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// ParseTargetArch parses a "major.minor" compute-capability string.
func ParseTargetArch(s string) (TargetArch, error) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return TargetArch{}, NewConfigError(fmt.Sprintf("invalid compute capability '%s', expected 'major.minor'", s))
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return TargetArch{}, NewConfigError(fmt.Sprintf("invalid compute capability major version '%s'", parts[0]))
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return TargetArch{}, NewConfigError(fmt.Sprintf("invalid compute capability minor version '%s'", parts[1]))
	}
	arch := TargetArch{Major: major, Minor: minor}
	if !arch.Valid() {
		return TargetArch{}, NewConfigError(fmt.Sprintf("invalid compute capability '%s'", s))
	}
	return arch, nil
}

// Valid reports whether the pair denotes a real architecture version. The
// zero value is not valid, which is what lets SessionOptions detect a missing
// target architecture.
func (a TargetArch) Valid() bool {
	return a.Major > 0 && a.Minor >= 0
}

// SMVersion returns the single-number architecture version, e.g. 75 for (7,5).
func (a TargetArch) SMVersion() int {
	return a.Major*10 + a.Minor
}

// ArchFlag returns the architecture flag passed to the native linker.
func (a TargetArch) ArchFlag() string {
	return fmt.Sprintf("-arch=sm_%d", a.SMVersion())
}

// ArchName returns the architecture name used in IR generation options.
func (a TargetArch) ArchName() string {
	return fmt.Sprintf("compute_%d", a.SMVersion())
}

func (a TargetArch) String() string {
	return fmt.Sprintf("%d.%d", a.Major, a.Minor)
}
