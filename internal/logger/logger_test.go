package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level  string
		expect zerolog.Level
	}{
		{level: "debug", expect: zerolog.DebugLevel},
		{level: " WARN ", expect: zerolog.WarnLevel},
		{level: "error", expect: zerolog.ErrorLevel},
		{level: "", expect: zerolog.InfoLevel},
		{level: "verbose", expect: zerolog.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.expect, ParseLevel(tc.level))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	buffer := &bytes.Buffer{}
	log := Component(New(Config{Level: "warn", Format: "json", Output: buffer}), "recording")
	log.Info().Msg("skipped")
	log.Warn().Str("patch_id", "p1").Msg("session files disagree")

	lines := bytes.Split(bytes.TrimSpace(buffer.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "ephys", entry["service"])
	assert.Equal(t, "recording", entry["component"])
	assert.Equal(t, "p1", entry["patch_id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNew_Console(t *testing.T) {
	buffer := &bytes.Buffer{}
	log := New(Config{Level: "debug", Output: buffer})
	log.Debug().Msg("session loaded")
	assert.Contains(t, buffer.String(), "session loaded")
}

func TestNew_WithCaller(t *testing.T) {
	buffer := &bytes.Buffer{}
	log := New(Config{Format: "json", Output: buffer, WithCaller: true})
	log.Info().Msg("session loaded")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buffer.Bytes()), &entry))
	caller, ok := entry["caller"].(string)
	require.True(t, ok)
	assert.Contains(t, caller, "logger_test.go")
}
