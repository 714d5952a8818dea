package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/glean/internal/adapters/logger"
	"go.trai.ch/glean/internal/core/domain"
)

func newCaptured() (*logger.Logger, *bytes.Buffer) {
	lg := logger.New()
	var buf bytes.Buffer
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	t.Parallel()

	lg, buf := newCaptured()
	lg.Info("loading table")

	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "loading table")
}

func TestLogger_Warn(t *testing.T) {
	t.Parallel()

	lg, buf := newCaptured()
	lg.Warn("cache entry corrupt, recomputing")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "cache entry corrupt")
}

func TestLogger_Error(t *testing.T) {
	t.Parallel()

	lg, buf := newCaptured()
	lg.Error(domain.ErrNoTableLoaded)

	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), domain.ErrNoTableLoaded.Error())
}
