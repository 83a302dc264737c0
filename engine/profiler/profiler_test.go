package profiler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickWaitsForInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(slog.New(slog.NewJSONHandler(&buf, nil)), time.Hour)

	for range 10 {
		assert.False(t, p.Tick())
	}
	assert.Zero(t, buf.Len())
}

func TestTickLogsStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(slog.New(slog.NewJSONHandler(&buf, nil)), time.Nanosecond)
	time.Sleep(time.Millisecond)

	require.True(t, p.Tick())

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "frame stats", record["msg"])
	assert.Contains(t, record, "fps")
	assert.Contains(t, record, "heap_mb")
	assert.Equal(t, 0, p.frameCount, "counters reset after a report")
}

func TestNewProfilerDefaults(t *testing.T) {
	p := NewProfiler(nil, 0)
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.logger)
}
