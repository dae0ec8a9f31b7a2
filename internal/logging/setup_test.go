package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want log.Level
		name string
	}{
		{-1, log.WarnLevel, "WARN"},
		{0, log.WarnLevel, "WARN"},
		{1, log.InfoLevel, "INFO"},
		{2, log.DebugLevel, "DEBUG"},
		{3, log.TraceLevel, "TRACE"},
		{10, log.TraceLevel, "TRACE"},
	}
	for _, tt := range tests {
		logger := log.New()
		SetVerbosity(logger, tt.v)
		assert.Equal(t, tt.want, logger.GetLevel())
		assert.Equal(t, tt.name, VerbosityName(logger))
	}
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	require.NoError(t, Setup(logger, Options{Verbosity: 1, Format: "JSON", Output: &buf}))

	logger.WithField("width", 3).Info("encoded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "encoded", entry["message"])
	assert.Equal(t, "info", entry["@level"])
	assert.InDelta(t, 3, entry["width"], 0)
	assert.Contains(t, entry, "timestamp")
}

func TestSetup_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	require.NoError(t, Setup(logger, Options{Output: &buf}))

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestSetup_UnknownFormat(t *testing.T) {
	require.Error(t, Setup(log.New(), Options{Format: "xml"}))
}
