package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.GetLevel()
	std.SetOutput(buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	std.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})
	return buf
}

func TestWithContextAddsUserAndRequestID(t *testing.T) {
	buf := captureOutput(t)

	ctx := ContextWithUser(context.Background(), "leader@example.com")
	ctx = ContextWithRequestID(ctx, "req-123")
	WithContext(ctx).WithField("operation", "approve_return").Info("done")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "leader@example.com", line["user"])
	assert.Equal(t, "req-123", line["request_id"])
	assert.Equal(t, "approve_return", line["operation"])
	assert.Equal(t, "done", line["msg"])
}

func TestWithContextUnknownUser(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).Warn("anonymous")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "unknown", line["user"])
	_, hasRequestID := line["request_id"]
	assert.False(t, hasRequestID)
}

func TestSetupLevels(t *testing.T) {
	prev := logrus.GetLevel()
	defer logrus.SetLevel(prev)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	Setup("error")
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
