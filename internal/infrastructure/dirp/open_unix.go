//go:build darwin || freebsd || linux

package dirp

import "github.com/ebitengine/purego"

func defaultOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
