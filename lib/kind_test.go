package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForPath(t *testing.T) {
	t.Parallel()
	testdata := map[string]ObjectKind{
		"module.ptx":          ObjectKindPTX,
		"module.cubin":        ObjectKindCubin,
		"module.fatbin":       ObjectKindFatbin,
		"libdevice.a":         ObjectKindArchive,
		"helpers.o":           ObjectKindObject,
		"module.ltoir":        ObjectKindLTOIR,
		"path/to/module.PTX":  ObjectKindPTX,
		"module.so":           ObjectKindUnknown,
		"module":              ObjectKindUnknown,
		"weird.ptx.bak":       ObjectKindUnknown,
		"/abs/path/kernels.o": ObjectKindObject,
	}
	for path, kind := range testdata {
		path, kind := path, kind
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, kind, KindForPath(path))
		})
	}
}

func TestObjectKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ptx", ObjectKindPTX.String())
	assert.Equal(t, "archive", ObjectKindArchive.String())
	assert.Equal(t, "unknown(0)", ObjectKindUnknown.String())
}

func TestObjectKindDefaultName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<jit-ptx>", ObjectKindPTX.DefaultName())
	assert.Equal(t, "<external-fatbin>", ObjectKindFatbin.DefaultName())
	assert.Equal(t, "<external-ltoir>", ObjectKindLTOIR.DefaultName())
}
