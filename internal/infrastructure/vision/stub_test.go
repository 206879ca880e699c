//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"thermal-report/internal/domain/entity"
)

func TestStubsReportDisabled(t *testing.T) {
	_, err := NewGoCVSmoother().Smooth(&entity.ZoneMask{Width: 1, Height: 1, Cells: []bool{true}}, 1.5)
	require.ErrorIs(t, err, ErrVisionDisabled)

	require.ErrorIs(t, NewGoCVRasterWriter().WriteRaster(&entity.TemperatureMatrix{}, "x.tiff"), ErrVisionDisabled)

	r := NewReportRenderer("", 120, zerolog.Nop())
	defer r.Close()
	require.ErrorIs(t, r.Render(&entity.Report{}, "x.jpg"), ErrVisionDisabled)
}
