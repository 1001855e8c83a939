package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorCounters(t *testing.T) {
	c := NewCollector()

	c.Increment("notes_created_total")
	c.Increment("notes_created_total")
	c.IncrementBy("http_requests_total_200", 5)

	snap := c.GetSnapshot()
	assert.Equal(t, int64(2), snap.Counters["notes_created_total"])
	assert.Equal(t, int64(5), snap.Counters["http_requests_total_200"])
}

func TestCollectorDurations(t *testing.T) {
	c := NewCollector()

	c.RecordDuration("http_request_duration_GET_/health", 0.1)
	c.RecordDuration("http_request_duration_GET_/health", 0.3)

	snap := c.GetSnapshot()
	assert.InDelta(t, 0.2, snap.Durations["http_request_duration_GET_/health_avg"], 1e-9)
	assert.Equal(t, float64(2), snap.Durations["http_request_duration_GET_/health_count"])
}

func TestCollectorDurationSampleCap(t *testing.T) {
	c := NewCollector()

	// First 500 samples at 1s get pushed out by 1000 samples at 2s.
	for i := 0; i < 500; i++ {
		c.RecordDuration("op", 1.0)
	}
	for i := 0; i < maxDurationSamples; i++ {
		c.RecordDuration("op", 2.0)
	}

	snap := c.GetSnapshot()
	assert.Equal(t, float64(maxDurationSamples), snap.Durations["op_count"])
	assert.InDelta(t, 2.0, snap.Durations["op_avg"], 1e-9)
}

func TestCollectorSnapshotIsolation(t *testing.T) {
	c := NewCollector()
	c.Increment("a")

	snap := c.GetSnapshot()
	snap.Counters["a"] = 99

	assert.Equal(t, int64(1), c.GetSnapshot().Counters["a"])
}

func TestCollectorConcurrentAccess(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Increment("hits")
				c.RecordDuration("latency", 0.01)
				c.GetSnapshot()
			}
		}()
	}
	wg.Wait()

	snap := c.GetSnapshot()
	assert.Equal(t, int64(1000), snap.Counters["hits"])
	assert.Equal(t, float64(1000), snap.Durations["latency_count"])
}
