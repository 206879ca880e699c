package entity

import "fmt"

// TemperatureMatrix — откалиброванная сетка температур, построчно (row-major).
// После создания не изменяется.
type TemperatureMatrix struct {
	Width  int       // ширина в пикселях
	Height int       // высота в пикселях
	Values []float64 // len == Width*Height
}

// NewTemperatureMatrix проверяет размеры и создаёт матрицу.
func NewTemperatureMatrix(width, height int, values []float64) (*TemperatureMatrix, error) {
	if width <= 0 || height <= 0 || len(values) == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d values, got %d",
			ErrDimensionMismatch, width, height, width*height, len(values))
	}
	return &TemperatureMatrix{Width: width, Height: height, Values: values}, nil
}

// At возвращает температуру в ячейке (row, col).
func (m *TemperatureMatrix) At(row, col int) float64 {
	return m.Values[row*m.Width+col]
}

// Empty сообщает, что в матрице нет данных.
func (m *TemperatureMatrix) Empty() bool {
	return m == nil || len(m.Values) == 0 || m.Width <= 0 || m.Height <= 0
}
