package app

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

const (
	chartExt  = ".jpg"
	rasterExt = ".tiff"
	tempUnit  = "C"
)

// Analysis — результаты анализа одной матрицы.
type Analysis struct {
	Statistics entity.Statistics
	Min        entity.ExtremePoint
	Max        entity.ExtremePoint
}

// Analyze считает статистику и экстремумы.
func Analyze(m *entity.TemperatureMatrix) (*Analysis, error) {
	stats, err := ComputeStatistics(m)
	if err != nil {
		return nil, err
	}
	minP, maxP, err := LocateExtrema(m)
	if err != nil {
		return nil, err
	}
	return &Analysis{Statistics: stats, Min: minP, Max: maxP}, nil
}

// OutputPath строит имя выходного файла: <stem>_<mode>.jpg или <stem>.tiff.
func OutputPath(outputDir, source string, mode entity.Mode) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if mode == entity.ModeRaw {
		return filepath.Join(outputDir, stem+rasterExt)
	}
	return filepath.Join(outputDir, stem+"_"+string(mode)+chartExt)
}

// FormatTemp форматирует температуру для подписей.
func FormatTemp(v float64) string {
	return fmt.Sprintf("%.1f %s", v, tempUnit)
}

// StatsBanner — строка статистики в рамке внизу отчёта.
func StatsBanner(s entity.Statistics) string {
	return fmt.Sprintf("MIN: %s  |  MAX: %s  |  MEAN: %s  |  MEDIAN: %s",
		FormatTemp(s.Min), FormatTemp(s.Max), FormatTemp(s.Mean), FormatTemp(s.Median))
}

// ZoneLine описывает параметры и границы зоны.
func ZoneLine(z *entity.Zone) string {
	return fmt.Sprintf("ZONE (M -%d%% / +%d%%): %.1f-%.1f %s",
		percent(z.Margins.Lower), percent(z.Margins.Upper), z.Bounds.Lower, z.Bounds.Upper, tempUnit)
}

// FooterLine — строка сенсора, размеров и даты; в режиме zone с границами зоны.
func FooterLine(c entity.CaptureInfo, width, height int, zone *entity.Zone) string {
	line := fmt.Sprintf("Sensor: %s (%dx%d)  |  Date: %s", c.Sensor, width, height, c.Timestamp)
	if zone != nil {
		line += "  |  " + ZoneLine(zone)
	}
	return line
}

func percent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

// ReportService собирает визуальный отчёт для режимов basic и zone.
type ReportService struct {
	renderer port.ReportRenderer
	zones    *ZoneService
	margins  entity.ZoneMargins
}

// NewReportService создаёт сервис отчётов.
func NewReportService(renderer port.ReportRenderer, zones *ZoneService, margins entity.ZoneMargins) *ReportService {
	return &ReportService{renderer: renderer, zones: zones, margins: margins}
}

// Build собирает Report без отрисовки.
func (s *ReportService) Build(m *entity.TemperatureMatrix, a *Analysis, capture entity.CaptureInfo, mode entity.Mode) (*entity.Report, error) {
	if !mode.Visual() {
		return nil, fmt.Errorf("%w: %s is not a visual mode", entity.ErrUnknownMode, mode)
	}

	var zone *entity.Zone
	if mode == entity.ModeZone {
		if s.zones == nil {
			return nil, errors.New("zone service is not configured")
		}
		z, err := s.zones.Build(m, a.Statistics.Median, s.margins)
		if err != nil {
			return nil, err
		}
		zone = z
	}

	return &entity.Report{
		Matrix:      m,
		Statistics:  a.Statistics,
		Min:         a.Min,
		Max:         a.Max,
		Zone:        zone,
		Capture:     capture,
		Mode:        mode,
		Title:       capture.Unit,
		FooterLine:  FooterLine(capture, m.Width, m.Height, zone),
		StatsBanner: StatsBanner(a.Statistics),
		MinLabel:    FormatTemp(a.Min.Value),
		MaxLabel:    FormatTemp(a.Max.Value),
	}, nil
}

// Compose собирает и рисует отчёт в outputDir.
func (s *ReportService) Compose(source string, m *entity.TemperatureMatrix, a *Analysis, capture entity.CaptureInfo, mode entity.Mode, outputDir string) (*entity.Artifact, error) {
	if s.renderer == nil {
		return nil, errors.New("report renderer is not configured")
	}

	report, err := s.Build(m, a, capture, mode)
	if err != nil {
		return nil, err
	}

	path := OutputPath(outputDir, source, mode)
	if err := s.renderer.Render(report, path); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	return &entity.Artifact{Path: path, Kind: entity.ArtifactChart}, nil
}
