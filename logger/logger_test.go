package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("INFO"))
	require.Equal(t, zerolog.ErrorLevel, ParseLevel("ERROR"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel("unknown"))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "Analyzer", LOG_LEVEL_WARN)

	l.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	l.Warn().Msg("shown")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "Analyzer", line["component"])
	require.Equal(t, "shown", line["message"])
}
