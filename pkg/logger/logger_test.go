package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONDefault(t *testing.T) {
	l := NewJSONDefault()
	require.NotNil(t, l, "NewJSONDefault() should not return nil")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Output: &buf, Format: "json"})

	l.Info("lead converted", "lead_id", "abc", "quote_code", "X1Y2Z3")

	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err, "JSON logger should emit valid JSON")

	assert.Equal(t, "lead converted", entry["msg"])
	assert.Equal(t, "abc", entry["lead_id"])
	assert.Equal(t, "X1Y2Z3", entry["quote_code"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Output: &buf, Format: "text"})

	l.Warn("column total mismatch", "column", "APROVADO")

	out := buf.String()
	assert.True(t, strings.Contains(out, "column total mismatch"), "text output should contain message")
	assert.True(t, strings.Contains(out, "APROVADO"), "text output should contain attribute value")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelWarn, Output: &buf, Format: "json"})

	l.Debug("should be dropped")
	l.Info("should be dropped too")

	assert.Empty(t, buf.String(), "messages below the configured level should be dropped")

	l.Error("kept")
	assert.NotEmpty(t, buf.String(), "error messages should pass the filter")
}

func TestNewWithOptions(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOptions(WithOutput(&buf), WithFormat("text"), WithLevel(slog.LevelDebug))

	l.Debug("debug enabled")
	assert.True(t, strings.Contains(buf.String(), "debug enabled"))
}

func TestNoOpLogger(t *testing.T) {
	l := NoOpLogger()
	require.NotNil(t, l)

	// Must not panic and must not write anywhere
	l.Info("ignored")
	l.Error("ignored")
}
