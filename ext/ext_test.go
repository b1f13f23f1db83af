package ext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpukit/jitlink/nvlink"
)

func open(flags []string) (nvlink.Handle, error) { return nil, nil }

func TestRegisterBackend(t *testing.T) {
	RegisterBackend("test-backend-a", open)
	RegisterBackend("test-backend-b", open)

	found, ok := FindBackend("test-backend-a")
	require.True(t, ok)
	require.NotNil(t, found)

	_, ok = FindBackend("test-backend-missing")
	assert.False(t, ok)

	names := Backends()
	assert.Contains(t, names, "test-backend-a")
	assert.Contains(t, names, "test-backend-b")
	assert.IsIncreasing(t, names)
}

func TestRegisterBackendDuplicate(t *testing.T) {
	RegisterBackend("test-backend-dup", open)
	assert.Panics(t, func() { RegisterBackend("test-backend-dup", open) })
}

func TestRegisterBackendNil(t *testing.T) {
	assert.Panics(t, func() { RegisterBackend("test-backend-nil", nil) })
}
