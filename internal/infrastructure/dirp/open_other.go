//go:build !(darwin || freebsd || linux)

package dirp

import "errors"

func defaultOpen(path string) (uintptr, error) {
	return 0, errors.New("dynamic loading of the dirp library is not supported on this platform")
}
