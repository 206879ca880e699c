package container

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"thermal-report/config"
	"thermal-report/internal/domain/entity"
	"thermal-report/internal/infrastructure/storage"
)

type failingDecoder struct{}

func (failingDecoder) Decode(ctx context.Context, path string) (*entity.TemperatureMatrix, error) {
	return nil, errors.New("not a radiometric jpeg")
}

func TestBatchOptions(t *testing.T) {
	cfg := &config.Config{
		InputDir:     "/in",
		OutputDir:    "/out",
		InputPattern: "*_T.JPG",
		UnitName:     "Fire Unit 7",
		ZoneMargins:  entity.ZoneMargins{Lower: 0.05, Upper: 0.1},
	}

	opts := BatchOptions(cfg, entity.ModeZone)
	require.Equal(t, "/in", opts.InputDir)
	require.Equal(t, "/out", opts.OutputDir)
	require.Equal(t, "*_T.JPG", opts.Pattern)
	require.Equal(t, entity.ModeZone, opts.Mode)
	require.Equal(t, "Fire Unit 7", opts.Unit)
	require.Equal(t, cfg.ZoneMargins, opts.Margins)
}

func TestNew_WiresBatch(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "a_T.JPG"), []byte("x"), 0o644))

	cfg := &config.Config{InputDir: in, OutputDir: out, InputPattern: "*_T.JPG"}
	results := storage.NewMemoryResultRepository()
	c := New(cfg, Adapters{Decoder: failingDecoder{}, Results: results}, zerolog.Nop())
	require.NotNil(t, c.BatchService)

	summary, err := c.BatchService.Run(context.Background(), BatchOptions(cfg, entity.ModeBasic))
	require.NoError(t, err)
	require.Equal(t, 1, summary.Failed)

	saved, err := results.List(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
}
