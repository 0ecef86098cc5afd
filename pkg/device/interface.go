package device

import "github.com/itohio/ltesense/pkg/record"

// Device defines the interface for ltesense peripherals (real or mocked).
type Device interface {
	Connect() error
	Close() error
	IsConnected() bool

	// Records delivers processed-record messages as they arrive.
	Records() <-chan ProcessedRecord
	// Packets delivers periodic telemetry packets.
	Packets() <-chan SensorPacket
	// Events delivers plain protocol lines (ACK/ERR/WARN/READY).
	Events() <-chan string

	SetLED(on bool) error
	SetRGB(r, g, b int) error
	StartStream() error
	StopStream() error
	ResetStream() error
	// Send streams one measurement record as a DATA command.
	Send(rec record.Record) error
}

// Ensure Serial implements Device.
var _ Device = (*Serial)(nil)

// Ensure Mock implements Device.
var _ Device = (*Mock)(nil)
