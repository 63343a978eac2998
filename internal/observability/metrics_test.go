package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/contacts/:id", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/contacts/:id", "GET", 200, 30*time.Millisecond)
	m.RecordRequest("/api/contacts", "POST", 201, time.Millisecond)
	m.RecordError("/api/contacts/:id", "GET", "NOT_FOUND")

	snap := m.Snapshot()
	require.Len(t, snap.Requests, 2)
	assert.Equal(t, "/api/contacts/:id|GET|200", snap.Requests[1].Key)
	assert.EqualValues(t, 2, snap.Requests[1].Count)
	assert.InDelta(t, 20.0, snap.Requests[1].AvgDurationMs, 0.001)
	require.Len(t, snap.Errors, 1)
	assert.Equal(t, "/api/contacts/:id|GET|NOT_FOUND", snap.Errors[0].Key)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}
