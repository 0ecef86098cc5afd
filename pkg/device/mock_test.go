package device

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/ltesense/pkg/config"
	"github.com/itohio/ltesense/pkg/proto"
	"github.com/itohio/ltesense/pkg/record"
)

func waitEvent(t *testing.T, dev Device) string {
	t.Helper()

	select {
	case ev := <-dev.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func waitRecord(t *testing.T, dev Device) ProcessedRecord {
	t.Helper()

	select {
	case rec := <-dev.Records():
		return rec
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for record")
		return ProcessedRecord{}
	}
}

func connectedMock(t *testing.T) *Mock {
	t.Helper()

	m := NewMock(nil)
	require.NoError(t, m.Connect())
	t.Cleanup(func() { m.Close() })
	assert.Equal(t, proto.Ready, waitEvent(t, m))
	return m
}

var testRecord = record.Record{
	Timestamp: 1398121943,
	Latitude:  47.8531,
	Longitude: 13.2151,
	Elevation: 600.5,
	PCI:       257,
	CellID:    902570,
	RSRP:      -94,
	RSRQ:      -13,
	RSSI:      -85,
	SINR:      12,
}

func TestMock_ConnectLifecycle(t *testing.T) {
	m := NewMock(nil)

	assert.False(t, m.IsConnected())
	require.NoError(t, m.Connect())
	assert.True(t, m.IsConnected())
	assert.Error(t, m.Connect())

	require.NoError(t, m.Close())
	assert.False(t, m.IsConnected())
	// Closing twice is harmless.
	require.NoError(t, m.Close())
}

func TestMock_RequiresConnection(t *testing.T) {
	m := NewMock(nil)

	assert.Error(t, m.SetLED(true))
	assert.Error(t, m.SetRGB(1, 2, 3))
	assert.Error(t, m.StartStream())
	assert.Error(t, m.Send(testRecord))
}

func TestMock_ControlAcks(t *testing.T) {
	m := connectedMock(t)

	require.NoError(t, m.SetLED(true))
	assert.Equal(t, proto.AckLEDOn, waitEvent(t, m))

	require.NoError(t, m.SetLED(false))
	assert.Equal(t, proto.AckLEDOff, waitEvent(t, m))

	require.NoError(t, m.SetRGB(10, 20, 30))
	assert.Equal(t, "ACK=RGB,10,20,30", waitEvent(t, m))

	// Out-of-range channels are clamped like the firmware clamps them.
	require.NoError(t, m.SetRGB(300, -5, 128))
	assert.Equal(t, "ACK=RGB,255,0,128", waitEvent(t, m))
}

func TestMock_SendBeforeStart(t *testing.T) {
	m := connectedMock(t)

	require.NoError(t, m.Send(testRecord))
	assert.Equal(t, proto.ErrNotStreaming, waitEvent(t, m))

	select {
	case rec := <-m.Records():
		t.Fatalf("unexpected record %+v", rec)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMock_StreamAndNumbering(t *testing.T) {
	m := connectedMock(t)

	require.NoError(t, m.StartStream())
	assert.Equal(t, proto.AckStreamStart, waitEvent(t, m))

	require.NoError(t, m.Send(testRecord))
	rec := waitRecord(t, m)
	assert.Equal(t, uint32(1), rec.RecordNum)
	assert.Equal(t, -85, rec.RSSI)
	assert.False(t, rec.RSSICalculated)

	require.NoError(t, m.Send(testRecord))
	assert.Equal(t, uint32(2), waitRecord(t, m).RecordNum)

	// Restarting the stream restarts the numbering.
	require.NoError(t, m.StartStream())
	assert.Equal(t, proto.AckStreamStart, waitEvent(t, m))
	require.NoError(t, m.Send(testRecord))
	assert.Equal(t, uint32(1), waitRecord(t, m).RecordNum)
}

func TestMock_EstimatesMissingRSSI(t *testing.T) {
	m := connectedMock(t)

	require.NoError(t, m.StartStream())
	waitEvent(t, m)

	missing := testRecord
	missing.RSSI = 0
	require.NoError(t, m.Send(missing))

	rec := waitRecord(t, m)
	assert.True(t, rec.RSSICalculated)
	assert.Equal(t, -67, rec.RSSI)
}

func TestMock_FlagsAnomalies(t *testing.T) {
	m := connectedMock(t)

	require.NoError(t, m.StartStream())
	waitEvent(t, m)

	weak := testRecord
	weak.RSRP = -110
	require.NoError(t, m.Send(weak))
	assert.True(t, waitRecord(t, m).IsAnomaly)
}

func TestMock_Telemetry(t *testing.T) {
	m := NewMock(&config.MockConfig{
		TelemetryInterval: 10 * time.Millisecond,
		TemperatureC:      22.5,
		HumidityRH:        45.0,
		PressureKPa:       101.3,
		NoiseLevel:        0.5,
	})
	require.NoError(t, m.Connect())
	t.Cleanup(func() { m.Close() })

	select {
	case pkt := <-m.Packets():
		require.NotNil(t, pkt.Temperature)
		require.NotNil(t, pkt.Humidity)
		require.NotNil(t, pkt.Pressure)
		assert.InDelta(t, 22.5, *pkt.Temperature, 1.0)
		assert.InDelta(t, 101.3, *pkt.Pressure, 1.0)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for telemetry packet")
	}
}
