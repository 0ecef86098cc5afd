package device

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/itohio/ltesense/pkg/config"
	"github.com/itohio/ltesense/pkg/estimate"
	"github.com/itohio/ltesense/pkg/proto"
	"github.com/itohio/ltesense/pkg/record"
)

// Mock simulates the sensing peripheral for testing and development.
// It honours the protocol semantics: streaming state, record counting,
// missing-RSSI estimation (formula path) and anomaly flagging, plus
// synthetic environmental telemetry on the configured cadence.
type Mock struct {
	cfg *config.MockConfig

	records chan ProcessedRecord
	packets chan SensorPacket
	events  chan string

	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool

	est *estimate.Selector

	// Protocol state
	streamActive bool
	recordCount  uint32
	ledOn        bool
	rgb          [3]int

	startTime time.Time
}

// NewMock creates a new mocked device instance.
func NewMock(cfg *config.MockConfig) *Mock {
	if cfg == nil {
		cfg = &config.MockConfig{
			TelemetryInterval: time.Second,
			TemperatureC:      22.5,
			HumidityRH:        45.0,
			PressureKPa:       101.3,
			NoiseLevel:        0.5,
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Mock{
		cfg:     cfg,
		records: make(chan ProcessedRecord, DefaultBufferSize),
		packets: make(chan SensorPacket, DefaultBufferSize),
		events:  make(chan string, DefaultBufferSize),
		ctx:     ctx,
		cancel:  cancel,
		est:     estimate.NewSelector(false, nil),
	}
}

// Connect simulates connecting to the device.
func (m *Mock) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return fmt.Errorf("already connected")
	}

	m.connected = true
	m.startTime = time.Now()
	m.streamActive = false
	m.recordCount = 0

	go m.generateTelemetry()

	m.pushEvent(proto.Ready)

	return nil
}

// Close stops the mocked device.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}

	m.cancel()
	m.connected = false

	close(m.records)
	close(m.packets)
	close(m.events)

	return nil
}

// IsConnected returns whether the device is currently connected.
func (m *Mock) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// Records returns the channel of processed-record messages.
func (m *Mock) Records() <-chan ProcessedRecord { return m.records }

// Packets returns the channel of telemetry packets.
func (m *Mock) Packets() <-chan SensorPacket { return m.packets }

// Events returns the channel of plain protocol lines.
func (m *Mock) Events() <-chan string { return m.events }

// SetLED switches the simulated status indicator.
func (m *Mock) SetLED(on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return fmt.Errorf("not connected")
	}

	m.ledOn = on
	if on {
		m.pushEvent(proto.AckLEDOn)
	} else {
		m.pushEvent(proto.AckLEDOff)
	}

	return nil
}

// SetRGB applies a simulated LED color, clamping like the firmware does.
func (m *Mock) SetRGB(r, g, b int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return fmt.Errorf("not connected")
	}

	cr, cg, cb := clampChannel(r), clampChannel(g), clampChannel(b)
	m.rgb = [3]int{cr, cg, cb}
	m.pushEvent(proto.AckRGB(uint8(cr), uint8(cg), uint8(cb)))

	return nil
}

// StartStream activates streaming and resets the record counter.
func (m *Mock) StartStream() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return fmt.Errorf("not connected")
	}

	m.streamActive = true
	m.recordCount = 0
	m.pushEvent(proto.AckStreamStart)

	return nil
}

// StopStream deactivates streaming, retaining the counter.
func (m *Mock) StopStream() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return fmt.Errorf("not connected")
	}

	m.streamActive = false
	m.pushEvent(proto.AckStreamStop)

	return nil
}

// ResetStream deactivates streaming and zeroes the counter.
func (m *Mock) ResetStream() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return fmt.Errorf("not connected")
	}

	m.streamActive = false
	m.recordCount = 0
	m.pushEvent(proto.AckStreamReset)

	return nil
}

// Send processes one record exactly like the firmware record processor.
func (m *Mock) Send(rec record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return fmt.Errorf("not connected")
	}

	if !m.streamActive {
		m.pushEvent(proto.ErrNotStreaming)
		return nil
	}

	m.recordCount++

	rssi := int(rec.RSSI)
	calculated := false
	if rec.MissingRSSI() {
		rssi, _ = m.est.Estimate(estimate.Features{
			RSRP:      int(rec.RSRP),
			RSRQ:      int(rec.RSRQ),
			SINR:      int(rec.SINR),
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			Elevation: rec.Elevation,
		})
		calculated = true
	}

	out := ProcessedRecord{
		Processed:  record.NewProcessed(rec, rssi, calculated, m.recordCount),
		ReceivedAt: time.Now(),
	}

	select {
	case m.records <- out:
	default:
		// Channel full, drop like a saturated serial reader would
	}

	return nil
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// pushEvent delivers a protocol line without blocking. Callers hold m.mu.
func (m *Mock) pushEvent(line string) {
	select {
	case m.events <- line:
	default:
	}
}

// generateTelemetry emits synthetic environmental packets on a ticker.
func (m *Mock) generateTelemetry() {
	ticker := time.NewTicker(m.cfg.TelemetryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			pkt := m.generatePacket()
			select {
			case m.packets <- pkt:
			case <-m.ctx.Done():
				return
			default:
				// Channel full, skip
			}
		}
	}
}

// generatePacket synthesizes one telemetry packet with slow drift.
func (m *Mock) generatePacket() SensorPacket {
	m.mu.RLock()
	elapsed := time.Since(m.startTime).Seconds()
	m.mu.RUnlock()

	drift := math.Sin(elapsed/60) * m.cfg.NoiseLevel
	temp := m.cfg.TemperatureC + drift
	humid := m.cfg.HumidityRH - drift*2
	press := m.cfg.PressureKPa + drift*0.1

	return SensorPacket{
		ReceivedAt:  time.Now(),
		Temperature: &temp,
		Humidity:    &humid,
		Pressure:    &press,
	}
}
