//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"image"

	"gocv.io/x/gocv"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

// GoCVSmoother сглаживает маску зоны гауссовым фильтром и ищет изолинию.
type GoCVSmoother struct{}

// NewGoCVSmoother создаёт сглаживатель на OpenCV.
func NewGoCVSmoother() *GoCVSmoother {
	return &GoCVSmoother{}
}

// Smooth размывает маску как поле 0/1. Ядро выводится из sigma, края
// отражаются.
func (s *GoCVSmoother) Smooth(mask *entity.ZoneMask, sigma float64) (*entity.Field, error) {
	if mask == nil || mask.Width <= 0 || mask.Height <= 0 || len(mask.Cells) != mask.Width*mask.Height {
		return nil, errors.New("invalid zone mask")
	}

	src := gocv.NewMatWithSize(mask.Height, mask.Width, gocv.MatTypeCV32F)
	defer src.Close()
	for i, inside := range mask.Cells {
		v := float32(0)
		if inside {
			v = 1
		}
		src.SetFloatAt(i/mask.Width, i%mask.Width, v)
	}

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.GaussianBlur(src, &dst, image.Pt(0, 0), sigma, sigma, gocv.BorderReflect)
	if dst.Empty() {
		return nil, errors.New("gaussian blur produced an empty field")
	}

	values := make([]float64, len(mask.Cells))
	for i := range values {
		values[i] = float64(dst.GetFloatAt(i/mask.Width, i%mask.Width))
	}
	return &entity.Field{Width: mask.Width, Height: mask.Height, Values: values}, nil
}

// Isocontour выделяет область поля выше level и возвращает её границы.
func (s *GoCVSmoother) Isocontour(field *entity.Field, level float64) (*entity.BoundaryContour, error) {
	if field == nil || field.Width <= 0 || field.Height <= 0 || len(field.Values) != field.Width*field.Height {
		return nil, errors.New("invalid field")
	}

	src := gocv.NewMatWithSize(field.Height, field.Width, gocv.MatTypeCV32F)
	defer src.Close()
	for i, v := range field.Values {
		src.SetFloatAt(i/field.Width, i%field.Width, float32(v))
	}

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(src, &thresh, float32(level), 255, gocv.ThresholdBinary)

	binary := gocv.NewMat()
	defer binary.Close()
	thresh.ConvertTo(&binary, gocv.MatTypeCV8U)

	contours := gocv.FindContours(binary, gocv.RetrievalList, gocv.ChainApproxSimple)
	defer contours.Close()

	polylines := make([][]image.Point, 0, contours.Size())
	for _, pts := range contours.ToPoints() {
		if len(pts) == 0 {
			continue
		}
		polylines = append(polylines, pts)
	}
	return &entity.BoundaryContour{Polylines: polylines}, nil
}

var _ port.MaskSmoother = (*GoCVSmoother)(nil)
