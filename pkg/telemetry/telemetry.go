// Package telemetry publishes periodic onboard sensor readings as one
// JSON line per tick. Payloads are sparse: a sensor that is unavailable
// this tick simply contributes no key, it is never zero-filled.
package telemetry

import (
	"encoding/json"
	"io"
	"time"
)

// DefaultInterval is the telemetry cadence.
const DefaultInterval = 1000 * time.Millisecond

// Wire keys, matching the original host-side packet layout.
const (
	KeyTemperature = "hs3003_t_c"
	KeyHumidity    = "hs3003_h_rh"
	KeyPressure    = "lps22hb_p_kpa"
	KeyBaroTemp    = "lps22hb_t_c"
	KeyProximity   = "apds_prox"
	KeyColor       = "apds_color"
	KeyGesture     = "apds_gesture"
	KeyAccel       = "acc_g"
	KeyGyro        = "gyro_dps"
	KeyMagnetic    = "mag_uT"
)

// Vec3 is a three-axis reading (acceleration, rotation, magnetic field).
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Color is an RGBC light reading from the color sensor.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
	C int `json:"c"`
}

// Probe samples one sensor. ok=false means the sensor has nothing to
// report this tick and the key is omitted from the payload.
type Probe func() (key string, value any, ok bool)

// Publisher emits one telemetry message per interval. The cadence is
// checked with a non-blocking elapsed-time comparison so the caller's
// loop is never starved.
type Publisher struct {
	out      io.Writer
	interval time.Duration
	probes   []Probe
	last     time.Time
}

// NewPublisher creates a publisher writing JSON lines to out.
func NewPublisher(out io.Writer, interval time.Duration, probes ...Probe) *Publisher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Publisher{out: out, interval: interval, probes: probes}
}

// Due reports whether the cadence has elapsed.
func (p *Publisher) Due(now time.Time) bool {
	return p.last.IsZero() || now.Sub(p.last) >= p.interval
}

// Tick emits one message if the cadence has elapsed, otherwise returns
// immediately. Ticks with no available sensor data emit nothing.
func (p *Publisher) Tick(now time.Time) error {
	if !p.Due(now) {
		return nil
	}
	p.last = now

	payload := make(map[string]any, len(p.probes))
	for _, probe := range p.probes {
		if key, value, ok := probe(); ok {
			payload[key] = value
		}
	}
	if len(payload) == 0 {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = p.out.Write(data)
	return err
}
