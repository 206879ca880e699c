package entity

import "errors"

var (
	// ErrEmptyMatrix возвращается для матрицы без данных.
	ErrEmptyMatrix = errors.New("temperature matrix is empty")

	// ErrDimensionMismatch возвращается, если длина данных не совпадает с размерами.
	ErrDimensionMismatch = errors.New("temperature matrix dimension mismatch")

	// ErrConflictingModes возвращается, если выбрано больше одного режима.
	ErrConflictingModes = errors.New("zone and raw modes are mutually exclusive")

	// ErrUnknownMode возвращается для неизвестного имени режима.
	ErrUnknownMode = errors.New("unknown mode")
)
