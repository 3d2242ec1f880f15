package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, FormatJSON, zerolog.InfoLevel)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("id", 1).Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"visible"`)
	assert.Contains(t, out, `"service":"actors"`)
	assert.Contains(t, out, `"id":1`)
}

func TestNewWithWriterConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, FormatConsole, zerolog.DebugLevel)
	require.NoError(t, err)

	log.Debug().Msg("store opened")
	assert.Contains(t, buf.String(), "store opened")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actors.log")
	log, err := New(Config{Level: "DEBUG", Format: FormatJSON, Output: path})
	require.NoError(t, err)

	log.Debug().Msg("to file")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestDefaultConfig(t *testing.T) {
	log, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
