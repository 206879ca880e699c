package port

import "thermal-report/internal/domain/entity"

// ReportRenderer интерфейс отрисовки визуального отчёта
type ReportRenderer interface {
	// Render рисует отчёт и записывает его в path
	Render(report *entity.Report, path string) error
}

// RasterWriter интерфейс записи одноканального float-растра
type RasterWriter interface {
	// WriteRaster записывает матрицу без изменений в физических единицах
	WriteRaster(matrix *entity.TemperatureMatrix, path string) error
}
