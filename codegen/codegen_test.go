package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpukit/jitlink/host"
	"github.com/gpukit/jitlink/lib"
)

type fakeCodegen struct {
	created []string
}

func (c *fakeCodegen) NewLibrary(name string) (host.Library, error) {
	c.created = append(c.created, name)
	return &fakeLibrary{name: name, options: map[string]string{}}, nil
}

func TestNewChecksCapabilities(t *testing.T) {
	t.Parallel()
	base := &fakeCodegen{}
	_, err := New(base, &fakeGenerator{}, nil, host.Capabilities{Version: host.Version{Major: 0, Minor: 58}})
	require.Error(t, err)
	var capErr lib.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, host.MinLTOVersion.String(), capErr.RequiredVersion())
	assert.Contains(t, err.Error(), host.MinLTOVersion.String())
}

func TestNewLibraryWrapsBaseUnits(t *testing.T) {
	t.Parallel()
	base := &fakeCodegen{}
	cg, err := New(base, &fakeGenerator{}, &fakeDeviceContext{cc: lib.TargetArch{Major: 7, Minor: 5}},
		host.Capabilities{Version: host.MinLTOVersion})
	require.NoError(t, err)

	unit, err := cg.NewLibrary("kernels")
	require.NoError(t, err)
	require.IsType(t, &LTOLibrary{}, unit)
	assert.Equal(t, "kernels", unit.LibName())
	assert.Equal(t, []string{"kernels"}, base.created)

	// the wrapped unit serves the LTO-IR path
	ir, err := unit.(*LTOLibrary).LTOIR(lib.TargetArch{})
	require.NoError(t, err)
	assert.NotEmpty(t, ir)
}
