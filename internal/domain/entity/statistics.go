package entity

// Statistics — скалярные агрегаты по матрице температур.
type Statistics struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// ExtremumKind различает минимум и максимум.
type ExtremumKind string

const (
	ExtremumMin ExtremumKind = "min"
	ExtremumMax ExtremumKind = "max"
)

// ExtremePoint — координаты самого холодного или самого горячего пикселя.
type ExtremePoint struct {
	Row   int
	Col   int
	Value float64
	Kind  ExtremumKind
}
