package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

// DefaultInputPattern — термальный канал DJI помечается суффиксом _T.
const DefaultInputPattern = "*_T.JPG"

// BatchOptions задаёт один пакетный запуск.
type BatchOptions struct {
	InputDir  string
	OutputDir string
	Pattern   string
	Mode      entity.Mode
	Unit      string
	Margins   entity.ZoneMargins
}

// BatchService обрабатывает входные файлы по одному и изолирует ошибки каждого.
type BatchService struct {
	decoder   port.TemperatureDecoder
	capture   port.CaptureReader
	reports   *ReportService
	exports   *ExportService
	results   port.ResultRepository
	publisher port.ReportPublisher
	log       zerolog.Logger
	now       func() time.Time
}

// NewBatchService создаёт пакетный драйвер. publisher может быть nil.
func NewBatchService(
	decoder port.TemperatureDecoder,
	capture port.CaptureReader,
	reports *ReportService,
	exports *ExportService,
	results port.ResultRepository,
	publisher port.ReportPublisher,
	log zerolog.Logger,
) *BatchService {
	return &BatchService{
		decoder:   decoder,
		capture:   capture,
		reports:   reports,
		exports:   exports,
		results:   results,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// ListInputs возвращает подходящие файлы в лексикографическом порядке.
func ListInputs(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultInputPattern
	}
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("list inputs: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// Run обрабатывает все файлы. Ошибка возвращается, только если пакет
// не удалось начать; ошибки отдельных файлов остаются в их результатах.
func (s *BatchService) Run(ctx context.Context, opts BatchOptions) (entity.Summary, error) {
	summary := entity.Summary{Mode: opts.Mode}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return summary, fmt.Errorf("create output dir: %w", err)
	}

	files, err := ListInputs(opts.InputDir, opts.Pattern)
	if err != nil {
		return summary, err
	}

	s.banner(opts, len(files))

	for i, path := range files {
		s.log.Info().
			Str("progress", fmt.Sprintf("%d/%d", i+1, len(files))).
			Str("file", filepath.Base(path)).
			Msg("processing")

		result := s.ProcessFile(ctx, path, opts)
		summary.Add(result)
		s.record(ctx, result)
	}

	s.log.Info().
		Int("total", summary.Total).
		Int("produced", summary.Produced).
		Int("failed", summary.Failed).
		Int("warned", summary.Warned).
		Msg("batch finished")

	if s.publisher != nil {
		if err := s.publisher.PublishSummary(ctx, summary); err != nil {
			s.log.Warn().Err(err).Msg("publish summary failed")
		}
	}

	return summary, nil
}

// ProcessFile проводит один файл через конвейер выбранного режима.
// Ошибки и паники не выходят за пределы файла.
func (s *BatchService) ProcessFile(ctx context.Context, path string, opts BatchOptions) (result *entity.FileResult) {
	result = &entity.FileResult{Source: path, Mode: opts.Mode}

	defer func() {
		if r := recover(); r != nil {
			result.Artifact = nil
			result.Err = fmt.Errorf("panic: %v", r)
		}
		result.ProcessedAt = s.now()
		if result.Err != nil {
			s.log.Error().Err(result.Err).Str("file", filepath.Base(path)).Msg("file failed")
		}
	}()

	artifact, stats, err := s.process(ctx, path, opts)
	result.Artifact = artifact
	result.Statistics = stats
	result.Err = err
	return result
}

func (s *BatchService) process(ctx context.Context, path string, opts BatchOptions) (*entity.Artifact, *entity.Statistics, error) {
	if s.decoder == nil {
		return nil, nil, errors.New("decoder is not configured")
	}

	matrix, err := s.decoder.Decode(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}

	if opts.Mode == entity.ModeRaw {
		if s.exports == nil {
			return nil, nil, errors.New("export service is not configured")
		}
		stats, err := ComputeStatistics(matrix)
		if err != nil {
			return nil, nil, fmt.Errorf("analyze: %w", err)
		}
		artifact, err := s.exports.Export(ctx, path, matrix, opts.OutputDir)
		if err != nil {
			return nil, &stats, err
		}
		return artifact, &stats, nil
	}

	if s.reports == nil {
		return nil, nil, errors.New("report service is not configured")
	}

	analysis, err := Analyze(matrix)
	if err != nil {
		return nil, nil, fmt.Errorf("analyze: %w", err)
	}

	capture := entity.CaptureInfo{Sensor: entity.UnknownSensor, Timestamp: entity.UnknownTimestamp}
	if s.capture != nil {
		capture = s.capture.Read(path)
	}
	capture.Unit = opts.Unit

	artifact, err := s.reports.Compose(path, matrix, analysis, capture, opts.Mode, opts.OutputDir)
	if err != nil {
		return nil, &analysis.Statistics, err
	}
	return artifact, &analysis.Statistics, nil
}

func (s *BatchService) record(ctx context.Context, result *entity.FileResult) {
	if s.results != nil {
		if err := s.results.Save(ctx, result); err != nil {
			s.log.Warn().Err(err).Str("file", filepath.Base(result.Source)).Msg("save result failed")
		}
	}
	if s.publisher != nil && !result.Failed() {
		if err := s.publisher.Publish(ctx, result); err != nil {
			s.log.Warn().Err(err).Str("file", filepath.Base(result.Source)).Msg("publish failed")
		}
	}
}

func (s *BatchService) banner(opts BatchOptions, files int) {
	ev := s.log.Info().
		Str("unit", opts.Unit).
		Str("mode", opts.Mode.Description()).
		Int("files", files)
	if opts.Mode == entity.ModeZone {
		ev = ev.Str("zone", fmt.Sprintf("median -%d%% / +%d%%", percent(opts.Margins.Lower), percent(opts.Margins.Upper)))
	}
	ev.Msg("batch starting")
}
