package app

import (
	"errors"
	"fmt"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

const (
	// ZoneSmoothingSigma — радиус гауссова сглаживания маски, в пикселях.
	ZoneSmoothingSigma = 1.5
	// ZoneContourLevel — уровень изолинии сглаженной маски.
	ZoneContourLevel = 0.5
)

// ZoneService строит маску зоны вокруг медианы и её сглаженную границу.
type ZoneService struct {
	smoother port.MaskSmoother
}

// NewZoneService создаёт сервис зоны.
func NewZoneService(smoother port.MaskSmoother) *ZoneService {
	return &ZoneService{smoother: smoother}
}

// BuildMask строит булеву маску: true, где температура в [lower, upper].
func BuildMask(m *entity.TemperatureMatrix, bounds entity.ZoneBounds) *entity.ZoneMask {
	cells := make([]bool, len(m.Values))
	for i, v := range m.Values {
		cells[i] = bounds.Contains(v)
	}
	return &entity.ZoneMask{Width: m.Width, Height: m.Height, Cells: cells}
}

// Build строит зону. Contour остаётся nil, если маска вырождена или
// сглаживание убрало пересечение уровня 0.5.
func (s *ZoneService) Build(m *entity.TemperatureMatrix, median float64, margins entity.ZoneMargins) (*entity.Zone, error) {
	if m.Empty() {
		return nil, entity.ErrEmptyMatrix
	}

	bounds := entity.NewZoneBounds(median, margins)
	zone := &entity.Zone{
		Margins: margins,
		Bounds:  bounds,
		Mask:    BuildMask(m, bounds),
	}

	if zone.Mask.Degenerate() {
		return zone, nil
	}

	if s.smoother == nil {
		return nil, errors.New("mask smoother is not configured")
	}

	field, err := s.smoother.Smooth(zone.Mask, ZoneSmoothingSigma)
	if err != nil {
		return nil, fmt.Errorf("smooth zone mask: %w", err)
	}
	if !field.Straddles(ZoneContourLevel) {
		return zone, nil
	}

	contour, err := s.smoother.Isocontour(field, ZoneContourLevel)
	if err != nil {
		return nil, fmt.Errorf("extract zone contour: %w", err)
	}
	if !contour.Empty() {
		zone.Contour = contour
	}

	return zone, nil
}
