// Package ext maintains the registry of native link backends. Backends are
// compiled in and register themselves from an init function; the CLI and
// embedders then select one by name.
package ext

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gpukit/jitlink/nvlink"
)

// DefaultBackendName is used when no backend is selected explicitly.
const DefaultBackendName = "nvjitlink"

//nolint:gochecknoglobals
var (
	mu       sync.RWMutex
	backends = make(map[string]nvlink.OpenFunc)
)

// RegisterBackend registers a native link backend constructor under the
// given name. It panics if the name is already taken, since that can only
// happen through a build mistake.
func RegisterBackend(name string, open nvlink.OpenFunc) {
	mu.Lock()
	defer mu.Unlock()
	if open == nil {
		panic(fmt.Sprintf("backend %s constructor is nil", name))
	}
	if _, ok := backends[name]; ok {
		panic(fmt.Sprintf("backend %s is already registered", name))
	}
	backends[name] = open
}

// FindBackend returns the backend registered under name.
func FindBackend(name string) (nvlink.OpenFunc, bool) {
	mu.RLock()
	defer mu.RUnlock()
	open, ok := backends[name]
	return open, ok
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
