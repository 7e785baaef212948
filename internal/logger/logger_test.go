package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("production", &buf)

	l.WithField("user_id", 7).Info("login")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "login", entry["msg"])
	assert.EqualValues(t, 7, entry["user_id"])
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestDevelopmentLoggerIsVerbose(t *testing.T) {
	l := NewWithOutput("development", &bytes.Buffer{})
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}
