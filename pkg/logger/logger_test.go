package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInitRenamesKeys(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	Init(&buf, slog.LevelInfo)
	slog.Debug("hidden")
	slog.Info("day archived", "day", "2007-10-01", "posts", 30)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "day archived", line["message"])
	require.Equal(t, "INFO", line["level"])
	require.Contains(t, line, "timestamp")
	require.Equal(t, "2007-10-01", line["day"])
	require.EqualValues(t, 30, line["posts"])
}

func TestGroupedKeysKeepTheirNames(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)
	log.Info("fetched", slog.Group("page", slog.String("msg", "ok"), slog.Int("time", 3)))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "fetched", line["message"])
	require.Equal(t, map[string]any{"msg": "ok", "time": float64(3)}, line["page"])
	require.NotContains(t, line, "msg")
}

func TestParseLevelTrimsAndAcceptsWarning(t *testing.T) {
	require.Equal(t, slog.LevelWarn, ParseLevel(" Warning "))
	require.Equal(t, slog.LevelDebug, ParseLevel("debug\n"))
}
