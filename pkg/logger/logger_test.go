package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out), "logger output should be valid JSON")
	return out
}

func TestNewWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)
	log.Info().Int64("account_id", 7).Msg("account registered")

	line := decodeLine(t, &buf)
	assert.Equal(t, "account registered", line["message"])
	assert.EqualValues(t, 7, line["account_id"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, ServiceName, line["service"])
	assert.Contains(t, line, "time")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter("info", &buf), "otp")
	log.Info().Msg("issued")

	line := decodeLine(t, &buf)
	assert.Equal(t, "otp", line["component"])
	assert.Equal(t, ServiceName, line["service"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
		warnSeen  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{" WARN ", false, false, true},
		{"error", false, false, false},
		{"", false, true, true},
		{"loud", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var debug, info, warn bytes.Buffer
			debugLog := NewWithWriter(tt.level, &debug)
			infoLog := NewWithWriter(tt.level, &info)
			warnLog := NewWithWriter(tt.level, &warn)
			debugLog.Debug().Msg("d")
			infoLog.Info().Msg("i")
			warnLog.Warn().Msg("w")

			assert.Equal(t, tt.debugSeen, debug.Len() > 0, "debug")
			assert.Equal(t, tt.infoSeen, info.Len() > 0, "info")
			assert.Equal(t, tt.warnSeen, warn.Len() > 0, "warn")
		})
	}
}

func TestNew_Pretty(t *testing.T) {
	assert.NotPanics(t, func() {
		log := New("info", true)
		log.Info().Msg("pretty mode")
	})
}
