// Package consts houses some constants needed across jitlink
package consts

import (
	"fmt"
	"runtime"
)

// Version contains the current semantic version of jitlink.
const Version = "0.1.0"

// FullVersion returns the maximally full version and build information for
// the currently running jitlink executable.
func FullVersion() string {
	return fmt.Sprintf("%s (%s, %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
