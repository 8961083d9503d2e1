package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"safeguard/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestZerologAdapter_WritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("ContactsStore", "contact added", map[string]interface{}{"country": "India"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ContactsStore", entry["component"])
	assert.Equal(t, "contact added", entry["message"])
	assert.Equal(t, "India", entry["country"])
}

func TestZerologAdapter_ErrorCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("Shell", errors.New("disk full"), nil)

	assert.Contains(t, buf.String(), `"error":"disk full"`)
	assert.Contains(t, buf.String(), `"component":"Shell"`)
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Quiz", "hidden", nil)
	log.Info("Quiz", "hidden", nil)
	log.Warning("Quiz", "shown", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "shown")
}
