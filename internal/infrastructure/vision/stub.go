//go:build !gocv
// +build !gocv

package vision

import (
	"github.com/rs/zerolog"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

// GoCVSmoother — заглушка без OpenCV.
type GoCVSmoother struct{}

// NewGoCVSmoother создаёт сглаживатель-заглушку.
func NewGoCVSmoother() *GoCVSmoother {
	return &GoCVSmoother{}
}

// Smooth возвращает ошибку, если сборка без тега gocv.
func (s *GoCVSmoother) Smooth(mask *entity.ZoneMask, sigma float64) (*entity.Field, error) {
	return nil, ErrVisionDisabled
}

// Isocontour возвращает ошибку, если сборка без тега gocv.
func (s *GoCVSmoother) Isocontour(field *entity.Field, level float64) (*entity.BoundaryContour, error) {
	return nil, ErrVisionDisabled
}

// GoCVRasterWriter — заглушка без OpenCV.
type GoCVRasterWriter struct{}

// NewGoCVRasterWriter создаёт писатель-заглушку.
func NewGoCVRasterWriter() *GoCVRasterWriter {
	return &GoCVRasterWriter{}
}

// WriteRaster возвращает ошибку, если сборка без тега gocv.
func (w *GoCVRasterWriter) WriteRaster(m *entity.TemperatureMatrix, path string) error {
	return ErrVisionDisabled
}

// GoCVRenderer — заглушка без OpenCV.
type GoCVRenderer struct {
	log zerolog.Logger
}

// NewReportRenderer создаёт рендерер-заглушку; логотип не загружается.
func NewReportRenderer(logoPath string, size int, log zerolog.Logger) *GoCVRenderer {
	log.Warn().Msg("built without gocv, reports will not be rendered")
	return &GoCVRenderer{log: log}
}

// Close ничего не делает.
func (r *GoCVRenderer) Close() error {
	return nil
}

// Render возвращает ошибку, если сборка без тега gocv.
func (r *GoCVRenderer) Render(report *entity.Report, path string) error {
	return ErrVisionDisabled
}

var (
	_ port.MaskSmoother   = (*GoCVSmoother)(nil)
	_ port.RasterWriter   = (*GoCVRasterWriter)(nil)
	_ port.ReportRenderer = (*GoCVRenderer)(nil)
)
