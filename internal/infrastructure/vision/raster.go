//go:build gocv
// +build gocv

package vision

import (
	"fmt"

	"gocv.io/x/gocv"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

// GoCVRasterWriter пишет матрицу как одноканальный 32-битный TIFF.
type GoCVRasterWriter struct{}

// NewGoCVRasterWriter создаёт писатель растров.
func NewGoCVRasterWriter() *GoCVRasterWriter {
	return &GoCVRasterWriter{}
}

// WriteRaster записывает температуры без масштабирования.
func (w *GoCVRasterWriter) WriteRaster(m *entity.TemperatureMatrix, path string) error {
	if m.Empty() {
		return entity.ErrEmptyMatrix
	}

	mat := gocv.NewMatWithSize(m.Height, m.Width, gocv.MatTypeCV32FC1)
	defer mat.Close()
	for i, v := range m.Values {
		mat.SetFloatAt(i/m.Width, i%m.Width, float32(v))
	}

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("failed to write raster %s", path)
	}
	return nil
}

var _ port.RasterWriter = (*GoCVRasterWriter)(nil)
