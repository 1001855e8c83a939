// Package metrics keeps process-wide counters and duration samples. State
// lives in a Collector instance owned by the bootstrap container and passed
// to whoever records, never as an ambient global. Everything resets on
// process restart.
package metrics

import "sync"

const maxDurationSamples = 1000

type Collector struct {
	mu        sync.Mutex
	counters  map[string]int64
	durations map[string][]float64
}

// Snapshot is the read-only view served by GET /metrics. Durations holds
// the derived "<name>_avg" and "<name>_count" pairs per recorded key.
type Snapshot struct {
	Counters  map[string]int64   `json:"counters"`
	Durations map[string]float64 `json:"durations"`
}

func NewCollector() *Collector {
	return &Collector{
		counters:  make(map[string]int64),
		durations: make(map[string][]float64),
	}
}

func (c *Collector) Increment(name string) {
	c.IncrementBy(name, 1)
}

func (c *Collector) IncrementBy(name string, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[name] += value
}

// RecordDuration appends a sample in seconds, keeping only the most recent
// maxDurationSamples per key.
func (c *Collector) RecordDuration(name string, seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	samples := append(c.durations[name], seconds)
	if len(samples) > maxDurationSamples {
		trimmed := make([]float64, maxDurationSamples)
		copy(trimmed, samples[len(samples)-maxDurationSamples:])
		samples = trimmed
	}
	c.durations[name] = samples
}

func (c *Collector) GetSnapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	counters := make(map[string]int64, len(c.counters))
	for name, value := range c.counters {
		counters[name] = value
	}

	durations := make(map[string]float64, len(c.durations)*2)
	for name, samples := range c.durations {
		if len(samples) == 0 {
			continue
		}
		var sum float64
		for _, s := range samples {
			sum += s
		}
		durations[name+"_avg"] = sum / float64(len(samples))
		durations[name+"_count"] = float64(len(samples))
	}

	return Snapshot{Counters: counters, Durations: durations}
}
