package entity

import (
	"image"

	"gonum.org/v1/gonum/floats"
)

// ZoneMargins — доли отступа от медианы вниз и вверх (0.1 == 10%).
type ZoneMargins struct {
	Lower float64
	Upper float64
}

// ZoneBounds — границы зоны температур вокруг медианы.
type ZoneBounds struct {
	Lower float64
	Upper float64
}

// NewZoneBounds считает границы как median*(1-d) и median*(1+u).
func NewZoneBounds(median float64, margins ZoneMargins) ZoneBounds {
	return ZoneBounds{
		Lower: median * (1 - margins.Lower),
		Upper: median * (1 + margins.Upper),
	}
}

// Contains проверяет попадание значения в [Lower, Upper] включительно.
func (b ZoneBounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// ZoneMask — булева маска того же размера, что и матрица.
type ZoneMask struct {
	Width  int
	Height int
	Cells  []bool
}

// Count возвращает число ячеек внутри зоны.
func (m *ZoneMask) Count() int {
	n := 0
	for _, c := range m.Cells {
		if c {
			n++
		}
	}
	return n
}

// Degenerate сообщает, что маска целиком true или целиком false.
func (m *ZoneMask) Degenerate() bool {
	n := m.Count()
	return n == 0 || n == len(m.Cells)
}

// Field — сглаженная маска как поле 0..1.
type Field struct {
	Width  int
	Height int
	Values []float64
}

func (f *Field) Min() float64 { return floats.Min(f.Values) }

func (f *Field) Max() float64 { return floats.Max(f.Values) }

// Straddles сообщает, что поле пересекает уровень level хотя бы где-то.
func (f *Field) Straddles(level float64) bool {
	return f.Min() < level && level < f.Max()
}

// BoundaryContour — ломаные изолинии 0.5 в координатах пикселей матрицы.
type BoundaryContour struct {
	Polylines [][]image.Point
}

// Empty сообщает, что ломаных нет.
func (c *BoundaryContour) Empty() bool {
	if c == nil {
		return true
	}
	for _, p := range c.Polylines {
		if len(p) > 0 {
			return false
		}
	}
	return true
}

// Zone — результат построения зоны. Contour == nil, если границы нет.
type Zone struct {
	Margins ZoneMargins
	Bounds  ZoneBounds
	Mask    *ZoneMask
	Contour *BoundaryContour
}
