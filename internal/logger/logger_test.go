package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, zerolog.InfoLevel), "batch")

	log.Debug().Msg("hidden")
	log.Info().Str("file", "a_T.JPG").Msg("processing")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "batch", entry["component"])
	require.Equal(t, "a_T.JPG", entry["file"])
	require.Equal(t, "processing", entry["message"])
	require.Contains(t, entry, "time")
}
