package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpukit/jitlink/lib"
)

func TestVersionLess(t *testing.T) {
	t.Parallel()
	assert.True(t, Version{0, 58}.Less(Version{0, 59}))
	assert.True(t, Version{0, 59}.Less(Version{1, 0}))
	assert.False(t, Version{0, 59}.Less(Version{0, 59}))
	assert.False(t, Version{1, 0}.Less(Version{0, 59}))
	assert.Equal(t, "0.59", Version{0, 59}.String())
}

func TestInstallLinker(t *testing.T) {
	t.Parallel()
	factory := func(opts lib.SessionOptions) (Linker, error) { return nil, nil }

	t.Run("TooOld", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Capabilities: Capabilities{Version: Version{0, 57}}}
		err := cfg.InstallLinker(factory)
		require.Error(t, err)
		var capErr lib.CapabilityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, MinVersion.String(), capErr.RequiredVersion())
		assert.Nil(t, cfg.NewLinker)
	})

	t.Run("Installs", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Capabilities: Capabilities{Version: MinVersion}}
		require.NoError(t, cfg.InstallLinker(factory))
		require.NotNil(t, cfg.NewLinker)
		// installing again has no additional effect
		require.NoError(t, cfg.InstallLinker(factory))
		require.NotNil(t, cfg.NewLinker)
	})
}

type noopCodegen struct{}

func (noopCodegen) NewLibrary(name string) (Library, error) { return nil, nil }

func TestInstallCodegen(t *testing.T) {
	t.Parallel()
	t.Run("TooOld", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Capabilities: Capabilities{Version: MinVersion}}
		err := cfg.InstallCodegen(noopCodegen{})
		require.Error(t, err)
		var capErr lib.CapabilityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, MinLTOVersion.String(), capErr.RequiredVersion())
		assert.Contains(t, err.Error(), "link-time optimization")
		assert.Nil(t, cfg.Codegen)
	})

	t.Run("Installs", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Capabilities: Capabilities{Version: MinLTOVersion}}
		require.NoError(t, cfg.InstallCodegen(noopCodegen{}))
		require.NotNil(t, cfg.Codegen)
		require.NoError(t, cfg.InstallCodegen(noopCodegen{}))
	})
}
