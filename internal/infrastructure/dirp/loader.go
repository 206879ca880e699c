package dirp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MainLibrary — основная библиотека DJI Thermal SDK.
const MainLibrary = "libdirp.so"

// helperLibraries открываются до основной с RTLD_GLOBAL, чтобы libdirp
// нашла их символы.
var helperLibraries = []string{"libv_dirp.so", "libv_iirp.so"}

// ErrLibraryDirNotSet возвращается, если каталог библиотек не задан.
var ErrLibraryDirNotSet = errors.New("dirp library directory is not set")

// OpenFunc открывает разделяемую библиотеку и возвращает её handle.
type OpenFunc func(path string) (uintptr, error)

// Library — открытая основная библиотека SDK.
type Library struct {
	Path   string
	Handle uintptr
}

// Loader разрешает имена библиотек SDK внутри настроенного каталога.
type Loader struct {
	dir    string
	open   OpenFunc
	exists func(path string) bool
}

// NewLoader создаёт загрузчик для каталога dir. open == nil означает
// системный dlopen.
func NewLoader(dir string, open OpenFunc) *Loader {
	if open == nil {
		open = defaultOpen
	}
	return &Loader{dir: dir, open: open, exists: fileExists}
}

// Resolve возвращает путь для имени библиотеки. Имена с dirp/iirp ищутся
// в каталоге SDK, при отсутствии файла используется libdirp.so оттуда же.
// Остальные имена возвращаются без изменений.
func (l *Loader) Resolve(name string) string {
	if name == "" || !(strings.Contains(name, "dirp") || strings.Contains(name, "iirp")) {
		return name
	}
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".so") {
		base += ".so"
	}
	full := filepath.Join(l.dir, base)
	if l.exists(full) {
		return full
	}
	return filepath.Join(l.dir, MainLibrary)
}

// Load открывает вспомогательные библиотеки и основную. Ошибка фатальна
// для запуска: без SDK не декодируется ни один файл.
func (l *Loader) Load() (*Library, error) {
	if l.dir == "" {
		return nil, ErrLibraryDirNotSet
	}

	mainPath := l.Resolve(MainLibrary)
	for _, name := range helperLibraries {
		path := l.Resolve(name)
		if path == mainPath {
			continue
		}
		if _, err := l.open(path); err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}

	handle, err := l.open(mainPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", mainPath, err)
	}
	return &Library{Path: mainPath, Handle: handle}, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
