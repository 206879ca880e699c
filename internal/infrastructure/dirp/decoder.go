//go:build darwin || freebsd || linux

package dirp

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

type resolution struct {
	Width  int32
	Height int32
}

// Decoder декодирует R-JPEG через DJI Thermal SDK.
type Decoder struct {
	mu sync.Mutex

	createFromRJPEG func(data *byte, size int32, handle *uintptr) int32
	getResolution   func(handle uintptr, res *resolution) int32
	measureEx       func(handle uintptr, data *float32, size int32) int32
	destroy         func(handle uintptr) int32
}

// NewDecoder привязывает функции SDK из уже открытой библиотеки.
func NewDecoder(lib *Library) (*Decoder, error) {
	if lib == nil || lib.Handle == 0 {
		return nil, fmt.Errorf("dirp library is not loaded")
	}

	d := &Decoder{}
	symbols := []struct {
		name string
		fn   any
	}{
		{"dirp_create_from_rjpeg", &d.createFromRJPEG},
		{"dirp_get_rjpeg_resolution", &d.getResolution},
		{"dirp_measure_ex", &d.measureEx},
		{"dirp_destroy", &d.destroy},
	}
	for _, s := range symbols {
		addr, err := purego.Dlsym(lib.Handle, s.name)
		if err != nil {
			return nil, fmt.Errorf("resolve %s in %s: %w", s.name, lib.Path, err)
		}
		purego.RegisterFunc(s.fn, addr)
	}
	return d, nil
}

// Decode читает файл и возвращает температуры в °C.
func (d *Decoder) Decode(ctx context.Context, path string) (*entity.TemperatureMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("read %s: empty file", path)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var handle uintptr
	if err := check("dirp_create_from_rjpeg", d.createFromRJPEG(&data[0], int32(len(data)), &handle)); err != nil {
		return nil, err
	}
	defer d.destroy(handle)

	var res resolution
	if err := check("dirp_get_rjpeg_resolution", d.getResolution(handle, &res)); err != nil {
		return nil, err
	}
	if res.Width <= 0 || res.Height <= 0 {
		return nil, fmt.Errorf("dirp_get_rjpeg_resolution: %w", entity.ErrEmptyMatrix)
	}

	raw := make([]float32, int(res.Width)*int(res.Height))
	if err := check("dirp_measure_ex", d.measureEx(handle, &raw[0], int32(len(raw)*4))); err != nil {
		return nil, err
	}
	runtime.KeepAlive(data)

	values := make([]float64, len(raw))
	for i, v := range raw {
		values[i] = float64(v)
	}
	return entity.NewTemperatureMatrix(int(res.Width), int(res.Height), values)
}

var _ port.TemperatureDecoder = (*Decoder)(nil)
