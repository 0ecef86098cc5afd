//go:build tinygo

//go:generate tinygo flash -target=nano-33-ble

package main

import (
	"machine"
	"time"

	"github.com/itohio/ltesense/pkg/core"
	"github.com/itohio/ltesense/pkg/estimate"
	"github.com/itohio/ltesense/pkg/infer"
	"github.com/itohio/ltesense/pkg/proto"
	"github.com/itohio/ltesense/pkg/rgb"
	"github.com/itohio/ltesense/pkg/telemetry"
)

var uart = machine.UART0

func main() {
	uart.Configure(machine.UARTConfig{
		BaudRate: UART_BAUD_RATE,
	})

	// Drivers first: a failure here is fatal and halts into an idle loop.
	colors, err := configureColors()
	if err != nil {
		println(proto.ErrInitFailed("pwm"))
		halt()
	}
	colors.Off()

	PIN_STATUS_LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := core.StatusLEDFunc(func(on bool) {
		if on {
			PIN_STATUS_LED.High()
		} else {
			PIN_STATUS_LED.Low()
		}
	})

	// Learned-model start-up runs exactly once. Failure is non-fatal:
	// the selector stays formula-only for the life of the process.
	var learned *estimate.Learned
	if rt, err := infer.Load(infer.ModelData, infer.ArenaSize); err != nil {
		println(proto.WarnModelUnavailable(err.Error()))
	} else {
		learned = estimate.NewLearned(rt)
	}
	selector := estimate.NewSelector(USE_MODEL, learned)

	publisher := telemetry.NewPublisher(uart, TELEMETRY_INTERVAL_MS*time.Millisecond, boardProbes()...)

	c := core.New(uart, led, colors, selector, publisher)

	println(proto.Ready)

	// Main loop: drain pending serial bytes, then give telemetry a
	// non-blocking chance to fire. Neither phase waits.
	for {
		for uart.Buffered() > 0 {
			b, err := uart.ReadByte()
			if err != nil {
				break
			}
			c.Feed(b)
		}

		c.Tick(time.Now())

		// Small delay to prevent tight loop (but still allow precise timing)
		time.Sleep(100 * time.Microsecond)
	}
}

// configureColors sets up PWM on the RGB LED pins and wraps the channels
// in the polarity-hiding driver.
func configureColors() (*rgb.Driver, error) {
	pwm := machine.PWM0
	if err := pwm.Configure(machine.PWMConfig{}); err != nil {
		return nil, err
	}

	channel := func(pin machine.Pin) (rgb.ChannelWriter, error) {
		ch, err := pwm.Channel(pin)
		if err != nil {
			return nil, err
		}
		return rgb.ChannelWriterFunc(func(level uint8) {
			pwm.Set(ch, uint32(level)*pwm.Top()/255)
		}), nil
	}

	r, err := channel(PIN_LED_R)
	if err != nil {
		return nil, err
	}
	g, err := channel(PIN_LED_G)
	if err != nil {
		return nil, err
	}
	b, err := channel(PIN_LED_B)
	if err != nil {
		return nil, err
	}

	return rgb.NewDriver(r, g, b), nil
}

// halt parks the firmware after a fatal start-up failure.
func halt() {
	for {
		time.Sleep(time.Second)
	}
}
