package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{" error ", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
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

func TestBuild_JSONWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	l, err := build(Config{}, zapcore.AddSync(&buf), false)
	require.NoError(t, err)

	l.Info("server started", zap.String("addr", ":5000"))
	l.Debug("hidden at info level")
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "server started", entry["msg"])
	assert.Equal(t, ":5000", entry["addr"])
	assert.Equal(t, "info", entry["level"])
}

func TestBuild_ConsoleWhenTerminal(t *testing.T) {
	var buf bytes.Buffer
	l, err := build(Config{Level: "debug"}, zapcore.AddSync(&buf), true)
	require.NoError(t, err)

	l.Debug("parsing log")
	require.NoError(t, l.Close())

	out := buf.String()
	assert.Contains(t, out, "parsing log")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "console encoding is not JSON")
}

func TestBuild_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "workbrief.log")
	var buf bytes.Buffer
	l, err := build(Config{File: path}, zapcore.AddSync(&buf), false)
	require.NoError(t, err)

	l.Warn("llm call failed", zap.String("error_kind", "timeout"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"error_kind":"timeout"`)
	assert.Contains(t, buf.String(), "llm call failed")
}

func TestBuild_InvalidLevel(t *testing.T) {
	_, err := build(Config{Level: "verbose"}, zapcore.AddSync(&bytes.Buffer{}), false)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("discarded")
	assert.NoError(t, l.Close())
}
