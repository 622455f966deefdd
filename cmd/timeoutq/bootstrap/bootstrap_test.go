package bootstrap

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{
		DefaultTTL: 500 * time.Millisecond,
		PullAfter:  200 * time.Millisecond,
		RunFor:     time.Second,
		LogLevel:   "info",
		LogOutput:  "console",
	}, cfg)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TIMEOUTQ_DEFAULT_TTL", "-1ns")
	t.Setenv("TIMEOUTQ_LOG_OUTPUT", "json")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), cfg.DefaultTTL)
	assert.Equal(t, "json", cfg.LogOutput)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TIMEOUTQ_PULL_AFTER", "1s")

	cfg, err := LoadConfig([]string{"-pull-after", "50ms", "-log.level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.PullAfter)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigRejectsMalformedInput(t *testing.T) {
	t.Setenv("TIMEOUTQ_RUN_FOR", "soon")
	_, err := LoadConfig(nil)
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownFlag(t *testing.T) {
	_, err := LoadConfig([]string{"-nope"})
	assert.Error(t, err)
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		output  string
		wantErr error
	}{
		{name: "console", level: "info", output: "console"},
		{name: "stdout", level: "warn", output: "stdout"},
		{name: "json", level: "debug", output: "json"},
		{name: "unknown level", level: "loud", output: "json", wantErr: ErrLoggingInvalidLogLevel},
		{name: "unknown output", level: "info", output: "xml", wantErr: ErrLoggingInvalidLogOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := Logging(Config{LogLevel: tt.level, LogOutput: tt.output}, &buf)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoggingJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Logging(Config{LogLevel: "info", LogOutput: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("value", "Bob").Msg("got")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "got", line["message"])
	assert.Equal(t, "Bob", line["value"])
	assert.Equal(t, "info", line["level"])
	assert.Contains(t, line, "caller")
}
