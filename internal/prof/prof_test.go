package prof

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartStop(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")

	s, err := Start(cpu, mem)
	require.NoError(t, err)
	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())

	for _, p := range []string{cpu, mem} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		require.Positive(t, info.Size(), p)
	}
}

func TestDisabled(t *testing.T) {
	s, err := Start("", "")
	require.NoError(t, err)
	require.NoError(t, s.Stop())

	var nilSession *Session
	require.NoError(t, nilSession.Stop())

	_, err = Start(filepath.Join(t.TempDir(), "missing", "cpu.pprof"), "")
	require.Error(t, err)
}
