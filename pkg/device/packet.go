package device

import (
	"time"

	"github.com/itohio/ltesense/pkg/record"
)

// Vec3 is a three-axis reading from the IMU.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ColorReading is an RGBC light reading from the APDS9960.
type ColorReading struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
	C int `json:"c"`
}

// SensorPacket is one parsed telemetry message. The firmware only sends
// keys for sensors that were available that tick, so every field is a
// pointer and nil means "not reported".
type SensorPacket struct {
	ReceivedAt time.Time `json:"-"`

	Temperature *float64      `json:"hs3003_t_c"`
	Humidity    *float64      `json:"hs3003_h_rh"`
	Pressure    *float64      `json:"lps22hb_p_kpa"`
	BaroTemp    *float64      `json:"lps22hb_t_c"`
	Proximity   *int          `json:"apds_prox"`
	Color       *ColorReading `json:"apds_color"`
	Gesture     *int          `json:"apds_gesture"`
	Accel       *Vec3         `json:"acc_g"`
	Gyro        *Vec3         `json:"gyro_dps"`
	Magnetic    *Vec3         `json:"mag_uT"`
}

// ProcessedRecord is a processed-record message with its arrival time.
type ProcessedRecord struct {
	record.Processed
	ReceivedAt time.Time `json:"-"`
}
