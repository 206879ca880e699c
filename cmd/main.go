package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"thermal-report/config"
	telegram "thermal-report/internal/api"
	"thermal-report/internal/container"
	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
	"thermal-report/internal/infrastructure/dirp"
	"thermal-report/internal/infrastructure/exiftool"
	"thermal-report/internal/infrastructure/metadata"
	"thermal-report/internal/infrastructure/storage"
	"thermal-report/internal/infrastructure/vision"
	"thermal-report/internal/logger"
)

func main() {
	zone := flag.Bool("zone", false, "highlight the median temperature zone")
	raw := flag.Bool("raw", false, "export radiometric rasters instead of charts")
	configPath := flag.String("config", "", "path to the config file (default: thermal.conf next to the executable)")
	flag.Parse()

	mode, err := entity.ParseMode(*zone, *raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	boot := logger.NewConsole(logger.DefaultLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.NewConsole(level)
	log.Debug().Str("config", cfg.Path).Msg("config loaded")

	if err := run(context.Background(), cfg, mode, log); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run(ctx context.Context, cfg *config.Config, mode entity.Mode, log zerolog.Logger) error {
	lib, err := dirp.NewLoader(cfg.DirpLibsPath, nil).Load()
	if err != nil {
		return fmt.Errorf("load dirp library: %w", err)
	}
	decoder, err := dirp.NewDecoder(lib)
	if err != nil {
		return fmt.Errorf("load dirp library: %w", err)
	}
	log.Debug().Str("library", lib.Path).Msg("dirp library loaded")

	var results port.ResultRepository
	if cfg.ResultsDB != "" {
		db, err := storage.NewSQLiteResultRepository(cfg.ResultsDB)
		if err != nil {
			return fmt.Errorf("open results db: %w", err)
		}
		defer db.Close()
		results = db
	} else {
		results = storage.NewMemoryResultRepository()
	}

	adapters := container.Adapters{
		Decoder:  decoder,
		Capture:  metadata.NewReader(logger.Component(log, "metadata")),
		Smoother: vision.NewGoCVSmoother(),
		Raster:   vision.NewGoCVRasterWriter(),
		Copier:   exiftool.NewCopier(cfg.ExiftoolPath),
		Results:  results,
	}

	// Логотип нужен только визуальным режимам.
	if mode.Visual() {
		renderer := vision.NewReportRenderer(cfg.LogoPath, cfg.LogoSize, logger.Component(log, "render"))
		defer renderer.Close()
		adapters.Renderer = renderer
	}

	if cfg.TelegramEnabled() {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID, logger.Component(log, "telegram"))
		if err != nil {
			log.Warn().Err(err).Msg("telegram disabled")
		} else {
			adapters.Publisher = bot
		}
	}

	c := container.New(cfg, adapters, log)

	summary, err := c.BatchService.Run(ctx, container.BatchOptions(cfg, mode))
	if err != nil {
		return err
	}

	log.Info().
		Str("output", cfg.OutputDir).
		Int("produced", summary.Produced).
		Int("failed", summary.Failed).
		Msg("done")
	return nil
}
