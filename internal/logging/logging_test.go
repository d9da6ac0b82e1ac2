package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	logger.Debug("imported numbers file", zap.Int("values", 3))

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "imported numbers file")
	assert.Contains(t, out, `"values": 3`)
}

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Error("should not appear")

	assert.Empty(t, buf.String())
}
