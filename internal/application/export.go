package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

// ExportService выгружает радиометрический растр и переносит метаданные.
type ExportService struct {
	writer port.RasterWriter
	copier port.MetadataCopier
	log    zerolog.Logger
}

// NewExportService создаёт сервис режима raw.
func NewExportService(writer port.RasterWriter, copier port.MetadataCopier, log zerolog.Logger) *ExportService {
	return &ExportService{writer: writer, copier: copier, log: log}
}

// Export пишет растр. Ошибка копирования тегов — только предупреждение:
// сами данные уже на диске.
func (s *ExportService) Export(ctx context.Context, source string, m *entity.TemperatureMatrix, outputDir string) (*entity.Artifact, error) {
	if s.writer == nil {
		return nil, errors.New("raster writer is not configured")
	}
	if m.Empty() {
		return nil, entity.ErrEmptyMatrix
	}

	path := OutputPath(outputDir, source, entity.ModeRaw)
	if err := s.writer.WriteRaster(m, path); err != nil {
		return nil, fmt.Errorf("write raster: %w", err)
	}

	artifact := &entity.Artifact{Path: path, Kind: entity.ArtifactRaster}
	if s.copier == nil {
		return artifact, nil
	}

	if err := s.copier.CopyTags(ctx, source, path); err != nil {
		s.log.Warn().Err(err).Str("file", filepath.Base(source)).Msg("metadata copy failed, raster kept")
		artifact.Warnings = append(artifact.Warnings, fmt.Sprintf("metadata copy: %v", err))
	}

	return artifact, nil
}
