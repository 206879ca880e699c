package container

import (
	"github.com/rs/zerolog"

	"thermal-report/config"
	app "thermal-report/internal/application"
	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
	"thermal-report/internal/logger"
)

// Adapters — реализации портов, собранные в main.
type Adapters struct {
	Decoder   port.TemperatureDecoder
	Capture   port.CaptureReader
	Smoother  port.MaskSmoother
	Renderer  port.ReportRenderer
	Raster    port.RasterWriter
	Copier    port.MetadataCopier
	Results   port.ResultRepository
	Publisher port.ReportPublisher // nil, если публикация выключена
}

type Container struct {
	ZoneService   *app.ZoneService
	ReportService *app.ReportService
	ExportService *app.ExportService
	BatchService  *app.BatchService
}

func New(cfg *config.Config, adapters Adapters, log zerolog.Logger) *Container {
	zoneService := app.NewZoneService(adapters.Smoother)
	reportService := app.NewReportService(adapters.Renderer, zoneService, cfg.ZoneMargins)
	exportService := app.NewExportService(adapters.Raster, adapters.Copier, logger.Component(log, "export"))
	batchService := app.NewBatchService(
		adapters.Decoder,
		adapters.Capture,
		reportService,
		exportService,
		adapters.Results,
		adapters.Publisher,
		logger.Component(log, "batch"),
	)

	return &Container{
		ZoneService:   zoneService,
		ReportService: reportService,
		ExportService: exportService,
		BatchService:  batchService,
	}
}

// BatchOptions переносит настройки запуска в параметры пакета.
func BatchOptions(cfg *config.Config, mode entity.Mode) app.BatchOptions {
	return app.BatchOptions{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Pattern:   cfg.InputPattern,
		Mode:      mode,
		Unit:      cfg.UnitName,
		Margins:   cfg.ZoneMargins,
	}
}
