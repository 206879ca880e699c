package port

import (
	"context"

	"thermal-report/internal/domain/entity"
)

// TemperatureDecoder интерфейс декодера радиометрических снимков
type TemperatureDecoder interface {
	// Decode читает файл и возвращает откалиброванную матрицу температур
	Decode(ctx context.Context, path string) (*entity.TemperatureMatrix, error)
}

// CaptureReader интерфейс чтения метаданных съёмки
type CaptureReader interface {
	// Read никогда не падает: отсутствующие поля заменяются плейсхолдерами
	Read(path string) entity.CaptureInfo
}
