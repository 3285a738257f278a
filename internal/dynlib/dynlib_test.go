package dynlib

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func systemLibrary(t *testing.T) string {
	t.Helper()
	switch runtime.GOOS {
	case "linux":
		return "libc.so.6"
	case "darwin":
		return "/usr/lib/libSystem.B.dylib"
	case "windows":
		return "kernel32.dll"
	default:
		t.Skipf("no known system library on %s", runtime.GOOS)
		return ""
	}
}

func TestOpenEmptyPath(t *testing.T) {
	lib, err := Open("")
	require.ErrorIs(t, err, ErrOpen)
	assert.Nil(t, lib)
}

func TestOpenMissingFile(t *testing.T) {
	lib, err := Open(filepath.Join(t.TempDir(), "does-not-exist.so"))
	require.ErrorIs(t, err, ErrOpen)
	assert.Nil(t, lib)
}

func TestSymbolLookup(t *testing.T) {
	lib, err := Open(systemLibrary(t))
	require.NoError(t, err)
	defer func() { require.NoError(t, lib.Close()) }()

	name := "strlen"
	if runtime.GOOS == "windows" {
		name = "GetCurrentProcessId"
	}
	addr, err := lib.Symbol(name)
	require.NoError(t, err)
	assert.NotZero(t, addr)

	addr, err = lib.Symbol("fmiwrap_definitely_not_exported")
	require.ErrorIs(t, err, ErrSymbolNotFound)
	assert.Zero(t, addr)
}

func TestCloseNilAndClosed(t *testing.T) {
	var lib *Library
	assert.NoError(t, lib.Close())

	lib, err := Open(systemLibrary(t))
	require.NoError(t, err)
	require.NoError(t, lib.Close())

	_, err = lib.Symbol("strlen")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}
