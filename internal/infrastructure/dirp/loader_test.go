package dirp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sdkDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("ELF"), 0o644))
	}
	return dir
}

func TestLoader_Resolve(t *testing.T) {
	dir := sdkDir(t, "libdirp.so", "libv_iirp.so")
	l := NewLoader(dir, func(string) (uintptr, error) { return 1, nil })

	require.Equal(t, filepath.Join(dir, "libdirp.so"), l.Resolve("libdirp.so"))
	require.Equal(t, filepath.Join(dir, "libv_iirp.so"), l.Resolve("libv_iirp"))
	require.Equal(t, filepath.Join(dir, "libdirp.so"), l.Resolve("libv_dirp.so"))
	require.Equal(t, filepath.Join(dir, "libv_iirp.so"), l.Resolve("/usr/lib/libv_iirp.so"))
	require.Equal(t, "libc.so.6", l.Resolve("libc.so.6"))
	require.Equal(t, "", l.Resolve(""))
}

func TestLoader_LoadOpensHelpersFirst(t *testing.T) {
	dir := sdkDir(t, "libdirp.so", "libv_dirp.so", "libv_iirp.so")

	var opened []string
	l := NewLoader(dir, func(path string) (uintptr, error) {
		opened = append(opened, filepath.Base(path))
		return uintptr(len(opened)), nil
	})

	lib, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"libv_dirp.so", "libv_iirp.so", "libdirp.so"}, opened)
	require.Equal(t, filepath.Join(dir, "libdirp.so"), lib.Path)
	require.Equal(t, uintptr(3), lib.Handle)
}

func TestLoader_MissingHelpersFallBackToMain(t *testing.T) {
	dir := sdkDir(t, "libdirp.so")

	var opened []string
	l := NewLoader(dir, func(path string) (uintptr, error) {
		opened = append(opened, filepath.Base(path))
		return 7, nil
	})

	_, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"libdirp.so"}, opened)
}

func TestLoader_OpenFailureIsFatal(t *testing.T) {
	dir := sdkDir(t)
	l := NewLoader(dir, func(path string) (uintptr, error) {
		return 0, errors.New("cannot open shared object file")
	})

	_, err := l.Load()
	require.ErrorContains(t, err, "libdirp.so")
	require.ErrorContains(t, err, "cannot open shared object file")
}

func TestLoader_RequiresDir(t *testing.T) {
	_, err := NewLoader("", nil).Load()
	require.ErrorIs(t, err, ErrLibraryDirNotSet)
}

func TestStatusErrors(t *testing.T) {
	require.NoError(t, check("dirp_destroy", 0))

	err := check("dirp_create_from_rjpeg", -7)
	require.EqualError(t, err, "dirp_create_from_rjpeg: dirp status -7: rjpeg parse failed")

	var st Status
	require.ErrorAs(t, err, &st)
	require.Equal(t, Status(-7), st)

	require.EqualError(t, Status(-99), "dirp status -99")
}
