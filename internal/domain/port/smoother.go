package port

import "thermal-report/internal/domain/entity"

// MaskSmoother интерфейс сглаживания маски зоны и поиска изолинии
type MaskSmoother interface {
	// Smooth применяет гауссово сглаживание к маске как к полю 0/1
	Smooth(mask *entity.ZoneMask, sigma float64) (*entity.Field, error)

	// Isocontour возвращает ломаные, где поле пересекает level
	Isocontour(field *entity.Field, level float64) (*entity.BoundaryContour, error)
}
