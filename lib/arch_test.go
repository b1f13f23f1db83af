package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetArch(t *testing.T) {
	t.Parallel()
	t.Run("Valid", func(t *testing.T) {
		t.Parallel()
		arch, err := ParseTargetArch("7.5")
		require.NoError(t, err)
		assert.Equal(t, TargetArch{Major: 7, Minor: 5}, arch)
		assert.Equal(t, 75, arch.SMVersion())
		assert.Equal(t, "-arch=sm_75", arch.ArchFlag())
		assert.Equal(t, "compute_75", arch.ArchName())
		assert.Equal(t, "7.5", arch.String())
	})
	t.Run("Invalid", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "7", "7.", ".5", "7.x", "x.5", "0.0", "-1.2"} {
			_, err := ParseTargetArch(s)
			assert.Errorf(t, err, "expected '%s' to fail", s)
			assert.IsType(t, ConfigError{}, err)
		}
	})
}

func TestTargetArchValid(t *testing.T) {
	t.Parallel()
	assert.False(t, TargetArch{}.Valid())
	assert.False(t, TargetArch{Major: 0, Minor: 5}.Valid())
	assert.True(t, TargetArch{Major: 9, Minor: 0}.Valid())
}
