package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const minimal = `
DIRP_LIBS_PATH=dji/libs
INPUT_DIR=in
OUTPUT_DIR=/srv/reports
`

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, minimal)
	dir := filepath.Dir(path)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, dir, cfg.Dir)
	require.Equal(t, filepath.Join(dir, "dji/libs"), cfg.DirpLibsPath)
	require.Equal(t, filepath.Join(dir, "in"), cfg.InputDir)
	require.Equal(t, "/srv/reports", cfg.OutputDir)
	require.Empty(t, cfg.LogoPath)
	require.Equal(t, DefaultLogoSize, cfg.LogoSize)
	require.Equal(t, "*_T.JPG", cfg.InputPattern)
	require.InDelta(t, 0.1, cfg.ZoneMargins.Lower, 1e-12)
	require.InDelta(t, 0.1, cfg.ZoneMargins.Upper, 1e-12)
	require.Equal(t, "exiftool", cfg.ExiftoolPath)
	require.Empty(t, cfg.ResultsDB)
	require.False(t, cfg.TelegramEnabled())
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_AllKeys(t *testing.T) {
	path := writeConfig(t, minimal+`
LOGO_NAME=logo.png
LOGO_SIZE=96
INPUT_PATTERN=*_R.JPG
UNIT_NAME="Fire Unit 7"
ZONE_LOWER_PERCENT=5
ZONE_UPPER_PERCENT=12.5
EXIFTOOL_PATH=tools/exiftool
RESULTS_DB=results.db
TELEGRAM_TOKEN=123:abc
TELEGRAM_CHAT_ID=-100200300
LOG_LEVEL=debug
`)
	dir := filepath.Dir(path)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "logo.png"), cfg.LogoPath)
	require.Equal(t, 96, cfg.LogoSize)
	require.Equal(t, "*_R.JPG", cfg.InputPattern)
	require.Equal(t, "Fire Unit 7", cfg.UnitName)
	require.InDelta(t, 0.05, cfg.ZoneMargins.Lower, 1e-12)
	require.InDelta(t, 0.125, cfg.ZoneMargins.Upper, 1e-12)
	require.Equal(t, filepath.Join(dir, "tools/exiftool"), cfg.ExiftoolPath)
	require.Equal(t, filepath.Join(dir, "results.db"), cfg.ResultsDB)
	require.True(t, cfg.TelegramEnabled())
	require.Equal(t, int64(-100200300), cfg.TelegramChatID)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, minimal+"UNIT_NAME=from file\nZONE_LOWER_PERCENT=5\n")
	t.Setenv("UNIT_NAME", "from env")
	t.Setenv("ZONE_LOWER_PERCENT", "20")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from env", cfg.UnitName)
	require.InDelta(t, 0.2, cfg.ZoneMargins.Lower, 1e-12)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.conf"))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing input":    "DIRP_LIBS_PATH=libs\nOUTPUT_DIR=out\n",
		"negative margin":  minimal + "ZONE_UPPER_PERCENT=-1\n",
		"bad margin":       minimal + "ZONE_LOWER_PERCENT=ten\n",
		"bad logo size":    minimal + "LOGO_SIZE=big\n",
		"zero logo size":   minimal + "LOGO_SIZE=0\n",
		"token no chat id": minimal + "TELEGRAM_TOKEN=123:abc\n",
		"bad chat id":      minimal + "TELEGRAM_TOKEN=123:abc\nTELEGRAM_CHAT_ID=chat\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
