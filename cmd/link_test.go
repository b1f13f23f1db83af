package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpukit/jitlink/ext"
	"github.com/gpukit/jitlink/nvlink/nvlinktest"
)

//nolint:gochecknoglobals
var testBackend = &nvlinktest.Backend{}

func init() {
	ext.RegisterBackend("cmd-test", testBackend.Open)
}

func testCmdLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLinkCommand(t *testing.T) {
	dir := t.TempDir()
	ptxPath := filepath.Join(dir, "kernel.ptx")
	require.NoError(t, os.WriteFile(ptxPath, []byte(".version 8.0\n.target sm_75\n"), 0o644))
	outPath := filepath.Join(dir, "out.cubin")

	cmd := getLinkCmd(testCmdLogger())
	cmd.SetArgs([]string{
		"--arch", "7.5", "--max-registers", "32",
		"--backend", "cmd-test", "-o", outPath, ptxPath,
	})
	require.NoError(t, cmd.Execute())

	bin, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEmpty(t, bin)

	require.NotEmpty(t, testBackend.Opened)
	flags := testBackend.Opened[len(testBackend.Opened)-1]
	assert.Equal(t, []string{"-arch=sm_75", "-maxrregcount=32"}, flags)
}

func TestLinkCommandUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	soPath := filepath.Join(dir, "kernel.so")
	require.NoError(t, os.WriteFile(soPath, []byte("ELF"), 0o644))

	cmd := getLinkCmd(testCmdLogger())
	cmd.SetArgs([]string{"--arch", "7.5", "--backend", "cmd-test", soPath})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot classify")
}

func TestLinkCommandMissingBackend(t *testing.T) {
	cmd := getLinkCmd(testCmdLogger())
	cmd.SetArgs([]string{"--arch", "7.5", "--backend", "no-such-backend", "whatever.ptx"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-backend")
	assert.Contains(t, err.Error(), "cmd-test")
}

func TestLinkCommandInvalidArch(t *testing.T) {
	cmd := getLinkCmd(testCmdLogger())
	cmd.SetArgs([]string{"--arch", "sm75", "--backend", "cmd-test", "whatever.ptx"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compute capability")
}

func TestInspectCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	dir := t.TempDir()
	ptxPath := filepath.Join(dir, "kernel.ptx")
	require.NoError(t, os.WriteFile(ptxPath, []byte(".version 8.0"), 0o644))

	cmd := getInspectCmd(testCmdLogger())
	cmd.SetOut(buf)
	cmd.SetArgs([]string{ptxPath, "other.fatbin", "weird.xyz"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "kernel.ptx: ptx")
	assert.Contains(t, out, "other.fatbin: fatbin")
	assert.Contains(t, out, "weird.xyz: unknown")
}

func TestVersionCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := getVersionCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "jitlink v")
}
