// Package core is the hardware-independent firmware core: a bounded line
// reader feeding a command dispatcher, the streaming state machine, and
// the record processor. firmware/ binds it to the board; the host-side
// mock binds it to in-memory pipes. Everything runs on one thread of
// control, so no field here needs locking.
package core

import (
	"io"
	"strings"
	"time"

	"github.com/itohio/ltesense/pkg/estimate"
	"github.com/itohio/ltesense/pkg/proto"
	"github.com/itohio/ltesense/pkg/rgb"
	"github.com/itohio/ltesense/pkg/telemetry"
)

// MaxLineLen bounds the inbound line buffer. Anything longer is discarded
// to keep memory fixed under malformed or unterminated input.
const MaxLineLen = 96

// StatusLED is the simple on/off indicator driven by LED=ON/OFF.
type StatusLED interface {
	Set(on bool)
}

// StatusLEDFunc adapts a function to the StatusLED interface.
type StatusLEDFunc func(on bool)

func (f StatusLEDFunc) Set(on bool) { f(on) }

// State is the single explicit mutable-state record of the firmware.
// It is owned by the Core and only mutated by command handling.
type State struct {
	StreamActive bool
	RecordCount  uint32
	ModelReady   bool
}

// Core wires the line reader, dispatcher, actuators and processors.
type Core struct {
	out    io.Writer
	led    StatusLED
	colors *rgb.Driver
	est    *estimate.Selector
	tele   *telemetry.Publisher

	state State

	line    [MaxLineLen]byte
	lineLen int
	discard bool
}

// New creates a core writing replies and emissions to out.
func New(out io.Writer, led StatusLED, colors *rgb.Driver, est *estimate.Selector, tele *telemetry.Publisher) *Core {
	return &Core{
		out:    out,
		led:    led,
		colors: colors,
		est:    est,
		tele:   tele,
		state:  State{ModelReady: est.Ready()},
	}
}

// State returns a copy of the current firmware state.
func (c *Core) State() State { return c.state }

// Feed consumes one inbound serial byte. Complete lines are trimmed and
// dispatched; the buffer is cleared afterwards.
func (c *Core) Feed(b byte) {
	if b == '\r' || b == '\n' {
		// A line terminator always ends an overflow-discard run.
		if c.discard {
			c.discard = false
			c.lineLen = 0
			return
		}
		if c.lineLen > 0 {
			line := strings.TrimSpace(string(c.line[:c.lineLen]))
			c.lineLen = 0
			if line != "" {
				c.dispatch(line)
			}
		}
		return
	}

	if c.discard {
		return
	}
	if c.lineLen >= MaxLineLen {
		c.lineLen = 0
		c.discard = true
		c.reply(proto.ErrCmdTooLong)
		return
	}
	c.line[c.lineLen] = b
	c.lineLen++
}

// FeedString is a test and mock convenience over Feed.
func (c *Core) FeedString(s string) {
	for i := 0; i < len(s); i++ {
		c.Feed(s[i])
	}
}

// Tick runs the telemetry phase of the cooperative loop.
func (c *Core) Tick(now time.Time) {
	if c.tele != nil {
		c.tele.Tick(now)
	}
}

func (c *Core) reply(line string) {
	c.out.Write([]byte(line))
	c.out.Write([]byte{'\n'})
}
