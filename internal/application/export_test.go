package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"thermal-report/internal/domain/entity"
)

func TestExportService_CopierFailureIsWarning(t *testing.T) {
	copier := &fakeCopier{err: errors.New(`exec: "exiftool": executable file not found in $PATH`)}
	svc := NewExportService(&fakeRasterWriter{}, copier, zerolog.Nop())

	m, err := entity.NewTemperatureMatrix(3, 1, []float64{-5.5, 21.25, 64})
	require.NoError(t, err)

	dir := t.TempDir()
	artifact, err := svc.Export(context.Background(), "/in/DJI_0001_T.JPG", m, dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "DJI_0001_T.tiff"), artifact.Path)
	require.Equal(t, entity.ArtifactRaster, artifact.Kind)
	require.Len(t, artifact.Warnings, 1)
	require.Contains(t, artifact.Warnings[0], "metadata copy")
	require.Equal(t, []string{"DJI_0001_T.JPG->DJI_0001_T.tiff"}, copier.calls)

	values, err := readRaster(artifact.Path)
	require.NoError(t, err)
	require.Equal(t, []float32{-5.5, 21.25, 64}, values)
}

func TestExportService_CopierSuccess(t *testing.T) {
	svc := NewExportService(&fakeRasterWriter{}, &fakeCopier{}, zerolog.Nop())

	artifact, err := svc.Export(context.Background(), "a_T.JPG", constMatrix(2, 2, 30), t.TempDir())
	require.NoError(t, err)
	require.Empty(t, artifact.Warnings)
}

func TestExportService_WriteFailure(t *testing.T) {
	copier := &fakeCopier{}
	svc := NewExportService(&fakeRasterWriter{err: errors.New("disk full")}, copier, zerolog.Nop())

	_, err := svc.Export(context.Background(), "a_T.JPG", constMatrix(2, 2, 30), t.TempDir())
	require.ErrorContains(t, err, "write raster")
	require.Empty(t, copier.calls)
}
