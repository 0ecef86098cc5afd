// Package stats maintains running aggregates over the processed-record
// stream on the host side: counts, averages, extremes, anomaly and
// calculated-RSSI rates, plus a bounded window of recent records.
package stats

import (
	"sync"

	"github.com/itohio/ltesense/pkg/device"
)

// DefaultWindowSize bounds the recent-record buffer.
const DefaultWindowSize = 1000

// Summary is a snapshot of the running aggregates.
type Summary struct {
	Total      int
	Anomalies  int
	Calculated int

	AnomalyRate    float64
	CalculatedRate float64

	AvgRSRP float64
	AvgRSRQ float64
	AvgRSSI float64
	AvgSINR float64

	MinRSRP, MaxRSRP int
	MinSINR, MaxSINR int
}

// Collector consumes processed records and maintains running aggregates.
type Collector struct {
	mu sync.RWMutex

	// Recent records, FIFO, bounded by windowSize (oldest dropped first).
	recent     []device.ProcessedRecord
	windowSize int

	total      int
	anomalies  int
	calculated int

	sumRSRP, sumRSRQ, sumRSSI, sumSINR int64
	minRSRP, maxRSRP                   int
	minSINR, maxSINR                   int

	callbacks []func(Summary)
	cbMu      sync.RWMutex

	shutdown bool
}

// New creates a Collector keeping at most windowSize recent records.
func New(windowSize int) *Collector {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Collector{
		windowSize: windowSize,
	}
}

// OnUpdate registers a callback invoked after every accepted record.
func (c *Collector) OnUpdate(fn func(Summary)) {
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	c.callbacks = append(c.callbacks, fn)
}

// Process consumes records from the input channel until it closes.
// Runs in its own goroutine.
func (c *Collector) Process(input <-chan device.ProcessedRecord) {
	go func() {
		for rec := range input {
			c.Add(rec)
		}
		c.mu.Lock()
		c.shutdown = true
		c.mu.Unlock()
	}()
}

// Add folds one record into the aggregates.
func (c *Collector) Add(rec device.ProcessedRecord) {
	c.mu.Lock()
	if c.shutdown {
		c.mu.Unlock()
		return
	}

	c.recent = append(c.recent, rec)
	if len(c.recent) > c.windowSize {
		c.recent = c.recent[1:]
	}

	if c.total == 0 {
		c.minRSRP, c.maxRSRP = int(rec.RSRP), int(rec.RSRP)
		c.minSINR, c.maxSINR = int(rec.SINR), int(rec.SINR)
	} else {
		c.minRSRP = min(c.minRSRP, int(rec.RSRP))
		c.maxRSRP = max(c.maxRSRP, int(rec.RSRP))
		c.minSINR = min(c.minSINR, int(rec.SINR))
		c.maxSINR = max(c.maxSINR, int(rec.SINR))
	}

	c.total++
	if rec.IsAnomaly {
		c.anomalies++
	}
	if rec.RSSICalculated {
		c.calculated++
	}

	c.sumRSRP += int64(rec.RSRP)
	c.sumRSRQ += int64(rec.RSRQ)
	c.sumRSSI += int64(rec.RSSI)
	c.sumSINR += int64(rec.SINR)

	summary := c.summaryLocked()
	c.mu.Unlock()

	c.cbMu.RLock()
	for _, fn := range c.callbacks {
		fn(summary)
	}
	c.cbMu.RUnlock()
}

// Summary returns a snapshot of the aggregates.
func (c *Collector) Summary() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.summaryLocked()
}

func (c *Collector) summaryLocked() Summary {
	s := Summary{
		Total:      c.total,
		Anomalies:  c.anomalies,
		Calculated: c.calculated,
		MinRSRP:    c.minRSRP,
		MaxRSRP:    c.maxRSRP,
		MinSINR:    c.minSINR,
		MaxSINR:    c.maxSINR,
	}
	if c.total > 0 {
		n := float64(c.total)
		s.AnomalyRate = float64(c.anomalies) / n
		s.CalculatedRate = float64(c.calculated) / n
		s.AvgRSRP = float64(c.sumRSRP) / n
		s.AvgRSRQ = float64(c.sumRSRQ) / n
		s.AvgRSSI = float64(c.sumRSSI) / n
		s.AvgSINR = float64(c.sumSINR) / n
	}
	return s
}

// Recent returns up to n of the most recent records, oldest first.
func (c *Collector) Recent(n int) []device.ProcessedRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if n <= 0 || n > len(c.recent) {
		n = len(c.recent)
	}
	out := make([]device.ProcessedRecord, n)
	copy(out, c.recent[len(c.recent)-n:])
	return out
}

// AnomalyRecords returns the anomalous records within the recent window.
func (c *Collector) AnomalyRecords() []device.ProcessedRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []device.ProcessedRecord
	for _, rec := range c.recent {
		if rec.IsAnomaly {
			out = append(out, rec)
		}
	}
	return out
}
