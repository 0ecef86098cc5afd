package device

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/itohio/ltesense/pkg/record"
)

const (
	// DefaultBaudRate is the standard baud rate for the Nano 33 BLE Sense.
	DefaultBaudRate = 115200
	// DefaultBufferSize is the default size for the delivery channel buffers.
	DefaultBufferSize = 100
)

// Port represents a serial port.
type Port struct {
	Name        string
	Description string
}

// Serial represents a connection to the sensing peripheral.
type Serial struct {
	port     string
	baudRate int
	bufSize  int

	conn      serial.Port
	records   chan ProcessedRecord
	packets   chan SensorPacket
	events    chan string
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool
}

// New creates a new Serial device instance with the specified port, baud
// rate, and channel buffer size.
func New(port string, baudRate int, bufSize int) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	if bufSize == 0 {
		bufSize = DefaultBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Serial{
		port:     port,
		baudRate: baudRate,
		bufSize:  bufSize,
		records:  make(chan ProcessedRecord, bufSize),
		packets:  make(chan SensorPacket, bufSize),
		events:   make(chan string, bufSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Ports returns a list of available serial ports.
func Ports() ([]Port, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	result := make([]Port, 0, len(ports))
	for _, name := range ports {
		result = append(result, Port{Name: name, Description: name})
	}

	return result, nil
}

// Connect connects to the serial port and starts the read loop.
func (d *Serial) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.connected {
		return fmt.Errorf("already connected")
	}

	mode := &serial.Mode{
		BaudRate: d.baudRate,
	}

	port, err := serial.Open(d.port, mode)
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", d.port, err)
	}

	d.conn = port
	d.connected = true

	go d.readLines()

	return nil
}

// Close closes the connection and stops the read loop.
func (d *Serial) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return nil
	}

	d.cancel()

	if d.conn != nil {
		if err := d.conn.Close(); err != nil {
			log.Printf("Error closing serial port: %v", err)
		}
		d.conn = nil
	}

	d.connected = false

	close(d.records)
	close(d.packets)
	close(d.events)

	return nil
}

// IsConnected returns whether the device is currently connected.
func (d *Serial) IsConnected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// Records returns the channel of processed-record messages.
func (d *Serial) Records() <-chan ProcessedRecord { return d.records }

// Packets returns the channel of telemetry packets.
func (d *Serial) Packets() <-chan SensorPacket { return d.packets }

// Events returns the channel of plain protocol lines.
func (d *Serial) Events() <-chan string { return d.events }

// SetLED switches the status indicator.
func (d *Serial) SetLED(on bool) error {
	if on {
		return d.writeLine("LED=ON")
	}
	return d.writeLine("LED=OFF")
}

// SetRGB sets the RGB LED color. Values are clamped by the firmware.
func (d *Serial) SetRGB(r, g, b int) error {
	return d.writeLine("RGB=" + strconv.Itoa(r) + "," + strconv.Itoa(g) + "," + strconv.Itoa(b))
}

// StartStream activates streaming mode and resets the record counter.
func (d *Serial) StartStream() error { return d.writeLine("STREAM=START") }

// StopStream deactivates streaming mode, retaining the counter.
func (d *Serial) StopStream() error { return d.writeLine("STREAM=STOP") }

// ResetStream deactivates streaming mode and zeroes the counter.
func (d *Serial) ResetStream() error { return d.writeLine("STREAM=RESET") }

// Send streams one measurement record as a DATA command.
func (d *Serial) Send(rec record.Record) error {
	return d.writeLine("DATA=" + rec.Payload())
}

func (d *Serial) writeLine(line string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.connected {
		return fmt.Errorf("not connected")
	}

	_, err := d.conn.Write([]byte(line + "\n"))
	if err != nil {
		return fmt.Errorf("failed to send %q: %w", line, err)
	}

	return nil
}

// readLines reads reply lines from the serial port and routes them to the
// records, packets, or events channel.
func (d *Serial) readLines() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in readLines: %v", r)
		}
	}()

	scanner := bufio.NewScanner(d.conn)
	for {
		select {
		case <-d.ctx.Done():
			return
		default:
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil && err != io.EOF {
					log.Printf("Error reading from serial port: %v", err)
				}
				return
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			d.routeLine(line, time.Now())
		}
	}
}

// routeLine classifies one inbound line. JSON lines are processed records
// or telemetry packets; everything else is a protocol event.
func (d *Serial) routeLine(line string, now time.Time) {
	if !strings.HasPrefix(line, "{") {
		select {
		case d.events <- line:
		case <-d.ctx.Done():
		default:
			log.Printf("Events channel full, dropping line")
		}
		return
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(line), &probe); err != nil {
		log.Printf("Failed to parse line '%s': %v", line, err)
		return
	}

	if probe.Type == record.TypeProcessed {
		var rec ProcessedRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Printf("Failed to parse processed record '%s': %v", line, err)
			return
		}
		rec.ReceivedAt = now

		select {
		case d.records <- rec:
		case <-d.ctx.Done():
		default:
			log.Printf("Records channel full, dropping record")
		}
		return
	}

	var pkt SensorPacket
	if err := json.Unmarshal([]byte(line), &pkt); err != nil {
		log.Printf("Failed to parse telemetry packet '%s': %v", line, err)
		return
	}
	pkt.ReceivedAt = now

	select {
	case d.packets <- pkt:
	case <-d.ctx.Done():
	default:
		log.Printf("Packets channel full, dropping packet")
	}
}
