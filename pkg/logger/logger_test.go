package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info("hidden")
	log.WithField("obstacle_id", "42").Warn("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "42", entry["obstacle_id"])
	assert.Equal(t, "warning", entry["level"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := New("chatty", &bytes.Buffer{})

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
