package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(&buf, "info", "text", "")
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("parsed", "documents", 3)

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=parsed")
	require.Contains(t, buf.String(), "documents=3")
}

func TestNewJSONWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wkt.log")

	var buf bytes.Buffer
	logger, closeFn, err := New(&buf, "debug", "json", path)
	require.NoError(t, err)

	logger.Debug("loaded wkt documents", "table", "parcels")
	require.NoError(t, closeFn())

	var console map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &console))
	require.Equal(t, "loaded wkt documents", console["msg"])
	require.Equal(t, "parcels", console["table"])

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(contents, &record))
	require.Equal(t, "DEBUG", record["level"])
	require.Equal(t, "parcels", record["table"])
}

func TestNewBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "wkt.log")

	_, _, err := New(&bytes.Buffer{}, "info", "text", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "open log file")
}
