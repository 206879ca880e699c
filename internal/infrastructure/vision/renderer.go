//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

// colormapInferno — cv::COLORMAP_INFERNO.
const colormapInferno = gocv.ColormapTypes(14)

var (
	colorRed   = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	colorCyan  = color.RGBA{G: 230, B: 230, A: 255}
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack = color.RGBA{A: 255}
	colorGray  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// GoCVRenderer рисует отчёт: карту inferno, экстремумы, контур зоны,
// шкалу, подвал и логотип.
type GoCVRenderer struct {
	logo    gocv.Mat
	hasLogo bool
	log     zerolog.Logger
}

// NewReportRenderer загружает логотип один раз. Пустой путь или
// нечитаемый файл означает отчёты без логотипа.
func NewReportRenderer(logoPath string, size int, log zerolog.Logger) *GoCVRenderer {
	r := &GoCVRenderer{log: log}
	if logoPath == "" || size <= 0 {
		return r
	}

	raw := gocv.IMRead(logoPath, gocv.IMReadUnchanged)
	if raw.Empty() {
		raw.Close()
		log.Warn().Str("logo", logoPath).Msg("logo not loaded, continuing without it")
		return r
	}
	defer raw.Close()

	logo := gocv.NewMat()
	gocv.Resize(raw, &logo, image.Pt(size, size), 0, 0, gocv.InterpolationArea)
	r.logo = logo
	r.hasLogo = true
	return r
}

// Close освобождает логотип.
func (r *GoCVRenderer) Close() error {
	if r.hasLogo {
		r.hasLogo = false
		return r.logo.Close()
	}
	return nil
}

// Render рисует отчёт и пишет JPEG в path.
func (r *GoCVRenderer) Render(report *entity.Report, path string) error {
	if report == nil || report.Matrix.Empty() {
		return entity.ErrEmptyMatrix
	}
	m := report.Matrix
	stats := report.Statistics

	gray, err := gocv.NewMatFromBytes(m.Height, m.Width, gocv.MatTypeCV8U, Normalize(m.Values, stats.Min, stats.Max))
	if err != nil {
		return fmt.Errorf("build intensity mat: %w", err)
	}
	defer gray.Close()

	colored := gocv.NewMat()
	defer colored.Close()
	gocv.ApplyColorMap(gray, &colored, colormapInferno)

	scale := ChartScale(m.Width)
	mapHeight := ChartHeight(m.Width, m.Height)
	mapRect := image.Rect(0, 0, ChartWidth, mapHeight)

	chart := gocv.NewMat()
	defer chart.Close()
	gocv.Resize(colored, &chart, image.Pt(ChartWidth, mapHeight), 0, 0, gocv.InterpolationLinear)

	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0),
		mapHeight+FooterHeight, ChartWidth+LegendWidth, gocv.MatTypeCV8UC3)
	defer canvas.Close()

	roi := canvas.Region(mapRect)
	chart.CopyTo(&roi)
	roi.Close()

	if report.Zone != nil && !report.Zone.Contour.Empty() {
		r.drawContour(&canvas, report.Zone.Contour, scale)
	}

	maxAt := ToCanvas(report.Max.Row, report.Max.Col, scale)
	minAt := ToCanvas(report.Min.Row, report.Min.Col, scale)
	drawCrosshair(&canvas, maxAt, colorRed)
	drawCrosshair(&canvas, minAt, colorCyan)
	drawLabel(&canvas, report.MaxLabel, ToCanvas(report.Max.Row-MaxLabelOffset, report.Max.Col, scale), mapRect, colorRed, colorWhite)
	drawLabel(&canvas, report.MinLabel, ToCanvas(report.Min.Row+MinLabelOffset, report.Min.Col, scale), mapRect, colorCyan, colorBlack)

	if r.hasLogo {
		r.blendLogo(&canvas, mapRect)
	}

	if err := drawLegend(&canvas, stats, mapHeight); err != nil {
		return err
	}
	drawFooter(&canvas, report, mapHeight)

	if ok := gocv.IMWriteWithParams(path, canvas, []int{int(gocv.IMWriteJpegQuality), JPEGQuality}); !ok {
		return fmt.Errorf("failed to write report %s", path)
	}
	return nil
}

func (r *GoCVRenderer) drawContour(canvas *gocv.Mat, contour *entity.BoundaryContour, scale float64) {
	scaled := make([][]image.Point, 0, len(contour.Polylines))
	for _, line := range contour.Polylines {
		if len(line) == 0 {
			continue
		}
		scaled = append(scaled, ScalePolyline(line, scale))
	}
	pv := gocv.NewPointsVectorFromPoints(scaled)
	defer pv.Close()
	gocv.Polylines(canvas, pv, true, colorRed, 2)
}

// blendLogo накладывает логотип с учётом альфа-канала.
func (r *GoCVRenderer) blendLogo(canvas *gocv.Mat, bounds image.Rectangle) {
	size := r.logo.Cols()
	origin := LogoOrigin(size)
	area := image.Rect(origin.X, origin.Y, origin.X+size, origin.Y+r.logo.Rows()).Intersect(bounds)
	if area.Empty() {
		return
	}

	channels := r.logo.Channels()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			ly, lx := y-origin.Y, x-origin.X
			alpha := 1.0
			if channels == 4 {
				alpha = float64(r.logo.GetUCharAt(ly, lx*4+3)) / 255
			}
			if alpha == 0 {
				continue
			}
			for c := 0; c < 3; c++ {
				src := float64(r.logo.GetUCharAt(ly, lx*channels+min(c, channels-1)))
				dst := float64(canvas.GetUCharAt(y, x*3+c))
				canvas.SetUCharAt(y, x*3+c, uint8(src*alpha+dst*(1-alpha)+0.5))
			}
		}
	}
}

func drawCrosshair(canvas *gocv.Mat, at image.Point, c color.RGBA) {
	gocv.Line(canvas, image.Pt(at.X-markerRadius, at.Y), image.Pt(at.X+markerRadius, at.Y), c, 2)
	gocv.Line(canvas, image.Pt(at.X, at.Y-markerRadius), image.Pt(at.X, at.Y+markerRadius), c, 2)
}

// drawLabel рисует подпись на полупрозрачной плашке внутри bounds.
func drawLabel(canvas *gocv.Mat, text string, anchor image.Point, bounds image.Rectangle, bg, fg color.RGBA) {
	const (
		font  = gocv.FontHersheySimplex
		scale = 0.6
		thick = 2
		padX  = 8
		padY  = 6
	)
	ts := gocv.GetTextSize(text, font, scale, thick)
	box := LabelBox(anchor, image.Pt(ts.X+2*padX, ts.Y+2*padY), bounds)
	if box.Empty() {
		return
	}

	roi := canvas.Region(box)
	defer roi.Close()
	fill := gocv.NewMatWithSizeFromScalar(scalarOf(bg), box.Dy(), box.Dx(), gocv.MatTypeCV8UC3)
	defer fill.Close()
	gocv.AddWeighted(fill, LabelOpacity, roi, 1-LabelOpacity, 0, &roi)

	gocv.PutText(canvas, text, image.Pt(box.Min.X+padX, box.Max.Y-padY), font, scale, fg, thick)
}

func drawLegend(canvas *gocv.Mat, stats entity.Statistics, mapHeight int) error {
	const barWidth = 20
	x0 := ChartWidth + 20
	top := mapHeight / 5
	height := mapHeight * 3 / 5
	if height < 2 {
		return nil
	}

	gradient, err := gocv.NewMatFromBytes(height, barWidth, gocv.MatTypeCV8U, Gradient(barWidth, height))
	if err != nil {
		return fmt.Errorf("build legend: %w", err)
	}
	defer gradient.Close()

	bar := gocv.NewMat()
	defer bar.Close()
	gocv.ApplyColorMap(gradient, &bar, colormapInferno)

	barRect := image.Rect(x0, top, x0+barWidth, top+height)
	roi := canvas.Region(barRect)
	bar.CopyTo(&roi)
	roi.Close()
	gocv.Rectangle(canvas, barRect, colorGray, 1)

	gocv.PutText(canvas, "C", image.Pt(x0+4, top-10), gocv.FontHersheySimplex, 0.5, colorBlack, 1)

	delta := stats.Max - stats.Min
	for _, v := range LegendTickValues(stats.Min, stats.Max, LegendTicks) {
		y := top + height/2
		if delta > 0 {
			y = top + int((1-(v-stats.Min)/delta)*float64(height-1))
		}
		gocv.Line(canvas, image.Pt(x0+barWidth, y), image.Pt(x0+barWidth+4, y), colorGray, 1)
		gocv.PutText(canvas, TickLabel(v), image.Pt(x0+barWidth+7, y+5), gocv.FontHersheySimplex, 0.42, colorBlack, 1)
	}
	return nil
}

func drawFooter(canvas *gocv.Mat, report *entity.Report, mapHeight int) {
	width := ChartWidth + LegendWidth
	left := 40
	avail := width - 2*left

	gocv.Line(canvas, image.Pt(left, mapHeight+15), image.Pt(width-left, mapHeight+15), colorGray, 1)

	if report.Title != "" {
		s := fitScale(report.Title, gocv.FontHersheyDuplex, 1.1, 2, avail)
		gocv.PutText(canvas, report.Title, image.Pt(left, mapHeight+65), gocv.FontHersheyDuplex, s, colorBlack, 2)
	}

	s := fitScale(report.FooterLine, gocv.FontHersheySimplex, 0.65, 1, avail)
	gocv.PutText(canvas, report.FooterLine, image.Pt(left, mapHeight+110), gocv.FontHersheySimplex, s, colorBlack, 1)

	const pad = 10
	s = fitScale(report.StatsBanner, gocv.FontHersheyDuplex, 0.75, 2, avail-2*pad)
	ts := gocv.GetTextSize(report.StatsBanner, gocv.FontHersheyDuplex, s, 2)
	baseline := image.Pt(left+pad, mapHeight+180)
	frame := image.Rect(left, baseline.Y-ts.Y-pad, left+ts.X+2*pad, baseline.Y+pad)
	gocv.Rectangle(canvas, frame, colorBlack, 1)
	gocv.PutText(canvas, report.StatsBanner, baseline, gocv.FontHersheyDuplex, s, colorBlack, 2)
}

// fitScale уменьшает кегль, пока строка не влезет в width.
func fitScale(text string, font gocv.HersheyFont, scale float64, thickness, width int) float64 {
	for scale > 0.3 && gocv.GetTextSize(text, font, scale, thickness).X > width {
		scale -= 0.05
	}
	return scale
}

func scalarOf(c color.RGBA) gocv.Scalar {
	return gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0)
}

var _ port.ReportRenderer = (*GoCVRenderer)(nil)
