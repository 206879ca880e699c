package app

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"thermal-report/internal/domain/entity"
)

// fakeSmoother — усреднение 3x3 с прижатием к краю, вместо гауссова фильтра.
type fakeSmoother struct {
	smoothCalls  int
	contourCalls int
	lastField    *entity.Field
	collapseTo   *float64
	err          error
}

func (f *fakeSmoother) Smooth(mask *entity.ZoneMask, sigma float64) (*entity.Field, error) {
	f.smoothCalls++
	if f.err != nil {
		return nil, f.err
	}
	values := make([]float64, len(mask.Cells))
	for i := range values {
		if f.collapseTo != nil {
			values[i] = *f.collapseTo
			continue
		}
		row, col := i/mask.Width, i%mask.Width
		sum, n := 0.0, 0.0
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				r := min(max(row+dr, 0), mask.Height-1)
				c := min(max(col+dc, 0), mask.Width-1)
				if mask.Cells[r*mask.Width+c] {
					sum++
				}
				n++
			}
		}
		values[i] = sum / n
	}
	f.lastField = &entity.Field{Width: mask.Width, Height: mask.Height, Values: values}
	return f.lastField, nil
}

func (f *fakeSmoother) Isocontour(field *entity.Field, level float64) (*entity.BoundaryContour, error) {
	f.contourCalls++
	var line []image.Point
	for i, v := range field.Values {
		if v < level {
			continue
		}
		row, col := i/field.Width, i%field.Width
		if col+1 < field.Width && field.Values[i+1] < level {
			line = append(line, image.Pt(col, row))
		}
	}
	return &entity.BoundaryContour{Polylines: [][]image.Point{line}}, nil
}

func floatPtr(v float64) *float64 { return &v }

// fakeDecoder отдаёт одну и ту же матрицу и падает на файлах из failOn.
type fakeDecoder struct {
	matrix  *entity.TemperatureMatrix
	failOn  map[string]bool
	panicOn map[string]bool
}

func (d *fakeDecoder) Decode(ctx context.Context, path string) (*entity.TemperatureMatrix, error) {
	name := filepath.Base(path)
	if d.panicOn[name] {
		panic("vendor library crashed")
	}
	if d.failOn[name] {
		return nil, errors.New("dirp_create_from_rjpeg failed")
	}
	return d.matrix, nil
}

type fakeCapture struct{}

func (fakeCapture) Read(path string) entity.CaptureInfo {
	return entity.CaptureInfo{Sensor: "ZH20T", Timestamp: "15.06.2023 14:30:22"}
}

// fakeRenderer пишет пустой файл и запоминает отчёты.
type fakeRenderer struct {
	reports []*entity.Report
	err     error
}

func (r *fakeRenderer) Render(report *entity.Report, path string) error {
	if r.err != nil {
		return r.err
	}
	r.reports = append(r.reports, report)
	return os.WriteFile(path, []byte("jpeg"), 0o644)
}

// fakeRasterWriter пишет значения как little-endian float32.
type fakeRasterWriter struct {
	err error
}

func (w *fakeRasterWriter) WriteRaster(m *entity.TemperatureMatrix, path string) error {
	if w.err != nil {
		return w.err
	}
	buf := make([]byte, 4*len(m.Values))
	for i, v := range m.Values {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
	}
	return os.WriteFile(path, buf, 0o644)
}

func readRaster(path string) ([]float32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return out, nil
}

type fakeCopier struct {
	err   error
	calls []string
}

func (c *fakeCopier) CopyTags(ctx context.Context, src, dst string) error {
	c.calls = append(c.calls, fmt.Sprintf("%s->%s", filepath.Base(src), filepath.Base(dst)))
	return c.err
}

type fakePublisher struct {
	published []string
	summaries []entity.Summary
}

func (p *fakePublisher) Publish(ctx context.Context, r *entity.FileResult) error {
	p.published = append(p.published, filepath.Base(r.Source))
	return nil
}

func (p *fakePublisher) PublishSummary(ctx context.Context, s entity.Summary) error {
	p.summaries = append(p.summaries, s)
	return nil
}

func constMatrix(w, h int, v float64) *entity.TemperatureMatrix {
	values := make([]float64, w*h)
	for i := range values {
		values[i] = v
	}
	m, err := entity.NewTemperatureMatrix(w, h, values)
	if err != nil {
		panic(err)
	}
	return m
}

// bandMatrix: правые stripe столбцов = hot, остальные = base.
func bandMatrix(w, h, stripe int, base, hot float64) *entity.TemperatureMatrix {
	values := make([]float64, w*h)
	for i := range values {
		if i%w >= w-stripe {
			values[i] = hot
		} else {
			values[i] = base
		}
	}
	m, err := entity.NewTemperatureMatrix(w, h, values)
	if err != nil {
		panic(err)
	}
	return m
}

func touch(dir string, names ...string) error {
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(strings.Repeat("x", 8)), 0o644); err != nil {
			return err
		}
	}
	return nil
}
