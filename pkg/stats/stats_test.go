package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/ltesense/pkg/device"
	"github.com/itohio/ltesense/pkg/record"
)

func makeRecord(num uint32, rsrp, sinr int8, anomaly, calculated bool) device.ProcessedRecord {
	rec := record.Record{
		Timestamp: 1398121943,
		RSRP:      rsrp,
		RSRQ:      -13,
		RSSI:      -85,
		SINR:      sinr,
	}
	p := record.NewProcessed(rec, -85, calculated, num)
	p.IsAnomaly = anomaly
	return device.ProcessedRecord{Processed: p, ReceivedAt: time.Now()}
}

func TestCollector_Aggregates(t *testing.T) {
	c := New(10)

	c.Add(makeRecord(1, -90, 10, false, false))
	c.Add(makeRecord(2, -110, -5, true, true))
	c.Add(makeRecord(3, -100, 15, false, true))

	s := c.Summary()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Anomalies)
	assert.Equal(t, 2, s.Calculated)
	assert.InDelta(t, 1.0/3.0, s.AnomalyRate, 1e-9)
	assert.InDelta(t, 2.0/3.0, s.CalculatedRate, 1e-9)
	assert.InDelta(t, -100.0, s.AvgRSRP, 1e-9)
	assert.Equal(t, -110, s.MinRSRP)
	assert.Equal(t, -90, s.MaxRSRP)
	assert.Equal(t, -5, s.MinSINR)
	assert.Equal(t, 15, s.MaxSINR)
}

func TestCollector_EmptySummary(t *testing.T) {
	s := New(10).Summary()

	assert.Zero(t, s.Total)
	assert.Zero(t, s.AnomalyRate)
	assert.Zero(t, s.AvgRSRP)
}

func TestCollector_WindowBound(t *testing.T) {
	c := New(3)

	for i := uint32(1); i <= 5; i++ {
		c.Add(makeRecord(i, -90, 10, false, false))
	}

	recent := c.Recent(0)
	require.Len(t, recent, 3)
	// Oldest first, and the first two were evicted.
	assert.Equal(t, uint32(3), recent[0].RecordNum)
	assert.Equal(t, uint32(5), recent[2].RecordNum)

	// Totals survive eviction from the window.
	assert.Equal(t, 5, c.Summary().Total)
}

func TestCollector_RecentSubset(t *testing.T) {
	c := New(10)
	for i := uint32(1); i <= 4; i++ {
		c.Add(makeRecord(i, -90, 10, false, false))
	}

	recent := c.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, uint32(3), recent[0].RecordNum)
	assert.Equal(t, uint32(4), recent[1].RecordNum)

	// Asking for more than available returns everything.
	assert.Len(t, c.Recent(100), 4)
}

func TestCollector_AnomalyRecords(t *testing.T) {
	c := New(10)
	c.Add(makeRecord(1, -90, 10, false, false))
	c.Add(makeRecord(2, -110, -5, true, false))
	c.Add(makeRecord(3, -112, -8, true, false))

	anomalies := c.AnomalyRecords()
	require.Len(t, anomalies, 2)
	assert.Equal(t, uint32(2), anomalies[0].RecordNum)
	assert.Equal(t, uint32(3), anomalies[1].RecordNum)
}

func TestCollector_OnUpdate(t *testing.T) {
	c := New(10)

	var seen []int
	c.OnUpdate(func(s Summary) { seen = append(seen, s.Total) })

	c.Add(makeRecord(1, -90, 10, false, false))
	c.Add(makeRecord(2, -90, 10, false, false))

	assert.Equal(t, []int{1, 2}, seen)
}

func TestCollector_Process(t *testing.T) {
	c := New(10)
	input := make(chan device.ProcessedRecord, 4)

	done := make(chan struct{})
	c.OnUpdate(func(s Summary) {
		if s.Total == 3 {
			close(done)
		}
	})

	c.Process(input)
	input <- makeRecord(1, -90, 10, false, false)
	input <- makeRecord(2, -110, -5, true, false)
	input <- makeRecord(3, -90, 10, false, false)
	close(input)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not drain the input channel")
	}

	s := c.Summary()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Anomalies)
}
