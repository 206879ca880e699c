package vision

import (
	"fmt"
	"image"
	"math"
)

// Геометрия отчёта.
const (
	ChartWidth     = 1000 // ширина карты температур на холсте
	LegendWidth    = 110  // полоса шкалы справа от карты
	FooterHeight   = 230  // подвал с подписями под картой
	JPEGQuality    = 95
	LabelOpacity   = 0.6
	MaxLabelOffset = 25 // пикселей исходной матрицы над максимумом
	MinLabelOffset = 45 // пикселей исходной матрицы под минимумом
	LegendTicks    = 6
	markerRadius   = 12
	logoMargin     = 12
)

// Normalize переводит температуры в 0..255 относительно [lo, hi].
// При hi == lo всё поле получает 0.
func Normalize(values []float64, lo, hi float64) []byte {
	out := make([]byte, len(values))
	delta := hi - lo
	if delta <= 0 {
		return out
	}
	for i, v := range values {
		x := (v - lo) / delta * 255
		out[i] = uint8(math.Round(math.Min(math.Max(x, 0), 255)))
	}
	return out
}

// ChartScale — коэффициент от пикселей матрицы к пикселям карты.
func ChartScale(width int) float64 {
	if width <= 0 {
		return 1
	}
	return float64(ChartWidth) / float64(width)
}

// ChartHeight — высота карты при сохранении пропорций.
func ChartHeight(width, height int) int {
	return int(math.Round(float64(height) * ChartScale(width)))
}

// ToCanvas переводит центр ячейки (row, col) в координаты холста.
func ToCanvas(row, col int, scale float64) image.Point {
	return image.Pt(
		int(math.Round((float64(col)+0.5)*scale)),
		int(math.Round((float64(row)+0.5)*scale)),
	)
}

// ScalePolyline переводит точки контура из координат матрицы в координаты холста.
func ScalePolyline(points []image.Point, scale float64) []image.Point {
	out := make([]image.Point, len(points))
	for i, p := range points {
		out[i] = ToCanvas(p.Y, p.X, scale)
	}
	return out
}

// LabelBox размещает плашку размера size с центром в anchor и
// прижимает её внутрь bounds.
func LabelBox(anchor, size image.Point, bounds image.Rectangle) image.Rectangle {
	r := image.Rect(0, 0, size.X, size.Y).Add(anchor.Sub(image.Pt(size.X/2, size.Y/2)))
	if r.Min.X < bounds.Min.X {
		r = r.Add(image.Pt(bounds.Min.X-r.Min.X, 0))
	}
	if r.Max.X > bounds.Max.X {
		r = r.Add(image.Pt(bounds.Max.X-r.Max.X, 0))
	}
	if r.Min.Y < bounds.Min.Y {
		r = r.Add(image.Pt(0, bounds.Min.Y-r.Min.Y))
	}
	if r.Max.Y > bounds.Max.Y {
		r = r.Add(image.Pt(0, bounds.Max.Y-r.Max.Y))
	}
	return r.Intersect(bounds)
}

// LegendTickValues — равномерные значения шкалы от lo до hi включительно.
func LegendTickValues(lo, hi float64, n int) []float64 {
	if n < 2 || hi <= lo {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// TickLabel форматирует значение шкалы.
func TickLabel(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// LogoOrigin — левый верхний угол логотипа в правом верхнем углу карты.
func LogoOrigin(size int) image.Point {
	return image.Pt(ChartWidth-size-logoMargin, logoMargin)
}

// Gradient строит вертикальный градиент 255..0 сверху вниз для шкалы.
func Gradient(width, height int) []byte {
	out := make([]byte, width*height)
	if height <= 1 {
		return out
	}
	for y := 0; y < height; y++ {
		v := uint8(255 - y*255/(height-1))
		for x := 0; x < width; x++ {
			out[y*width+x] = v
		}
	}
	return out
}
