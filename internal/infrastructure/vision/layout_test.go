package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{10, 15, 20, 25}, 10, 20)
	require.Equal(t, []byte{0, 128, 255, 255}, got)
}

func TestNormalize_FlatField(t *testing.T) {
	require.Equal(t, []byte{0, 0, 0}, Normalize([]float64{20, 20, 20}, 20, 20))
}

func TestChartGeometry(t *testing.T) {
	require.Equal(t, 1.5625, ChartScale(640))
	require.Equal(t, 800, ChartHeight(640, 512))
	require.Equal(t, image.Pt(2, 2), ToCanvas(0, 0, 4))
	require.Equal(t, image.Pt(14, 6), ToCanvas(1, 3, 4))
}

func TestScalePolyline(t *testing.T) {
	got := ScalePolyline([]image.Point{{X: 3, Y: 1}, {X: 0, Y: 0}}, 4)
	require.Equal(t, []image.Point{{X: 14, Y: 6}, {X: 2, Y: 2}}, got)
}

func TestLabelBox_StaysInsideMap(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 80)

	r := LabelBox(image.Pt(50, 40), image.Pt(20, 10), bounds)
	require.Equal(t, image.Rect(40, 35, 60, 45), r)

	r = LabelBox(image.Pt(2, -30), image.Pt(20, 10), bounds)
	require.Equal(t, image.Rect(0, 0, 20, 10), r)

	r = LabelBox(image.Pt(99, 79), image.Pt(20, 10), bounds)
	require.Equal(t, image.Rect(80, 70, 100, 80), r)
}

func TestLegendTickValues(t *testing.T) {
	require.Equal(t, []float64{10, 15, 20}, LegendTickValues(10, 20, 3))
	require.Equal(t, []float64{20}, LegendTickValues(20, 20, 6))
	require.Equal(t, "12.3", TickLabel(12.34))
}

func TestGradient(t *testing.T) {
	g := Gradient(2, 3)
	require.Equal(t, []byte{255, 255, 128, 128, 0, 0}, g)
}
