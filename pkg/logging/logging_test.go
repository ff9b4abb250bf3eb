package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, slog.LevelInfo, "json"), "catalog")

	logger.Debug("hidden")
	logger.Info("snapshot loaded", "airports", 4)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "snapshot loaded", entry["msg"])
	assert.Equal(t, "catalog", entry["component"])
	assert.Equal(t, float64(4), entry["airports"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelWarn, "text").Warn("refresh failed", "dataset", "runways")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "dataset=runways")
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	_, err := Setup(&buf, "debug", "text")
	require.NoError(t, err)
	slog.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	_, err = Setup(&buf, "loud", "text")
	assert.Error(t, err)
}
