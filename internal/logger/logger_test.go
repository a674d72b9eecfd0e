package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanboard/cms/internal/logger"
)

func TestInitValidation(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     logger.Log
		wantErr bool
	}{
		{name: "unknown level", cfg: logger.Log{LogLevel: "loud", ServiceName: "test"}, wantErr: true},
		{name: "missing service", cfg: logger.Log{LogLevel: "info"}, wantErr: true},
		{name: "no writers", cfg: logger.Log{LogLevel: "info", ServiceName: "test"}},
		{name: "console", cfg: logger.Log{LogLevel: "debug", ServiceName: "test", Console: logger.Console{Enabled: true}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := logger.Init(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInitRollingFiles(t *testing.T) {
	dir := t.TempDir()

	err := logger.Init(logger.Log{
		LogLevel:    "info",
		ServiceName: "test",
		File:        logger.LogFile{Enabled: true, Path: dir, MaxSize: 1},
	})
	require.NoError(t, err)

	log.Info().Str("k", "v").Msg("info line")
	log.Warn().Msg("warn line")

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	errs, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)

	assert.Contains(t, string(info), "info line")
	assert.NotContains(t, string(info), "warn line")
	assert.Contains(t, string(errs), "warn line")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(info))), &line))
	assert.Equal(t, "test", line["service"])
	assert.Equal(t, "v", line["k"])
}

func TestLevelWriter(t *testing.T) {
	var info, errs bytes.Buffer
	lw := &logger.LevelWriter{InfoWriter: &info, ErrorWriter: &errs}

	_, _ = lw.WriteLevel(zerolog.DebugLevel, []byte("debug"))
	_, _ = lw.WriteLevel(zerolog.ErrorLevel, []byte("error"))
	_, _ = lw.WriteLevel(zerolog.Disabled, []byte("nothing"))

	assert.Equal(t, "debug", info.String())
	assert.Equal(t, "error", errs.String())
}
