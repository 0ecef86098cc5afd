package rgb

// ChannelWriter writes one raw output level to a hardware color channel.
// Implementations wrap a PWM channel or a test double.
type ChannelWriter interface {
	Write(level uint8)
}

// ChannelWriterFunc adapts a plain function to the ChannelWriter interface.
type ChannelWriterFunc func(level uint8)

func (f ChannelWriterFunc) Write(level uint8) { f(level) }

// Driver drives the onboard RGB LED. The LED is common-anode, so the
// hardware level is inverted: writing 0 is full brightness and 255 is off.
// Callers always use direct intensities (0=off, 255=full); the inversion
// happens here and nowhere else.
type Driver struct {
	red   ChannelWriter
	green ChannelWriter
	blue  ChannelWriter
}

// NewDriver creates a driver over the three hardware channels.
func NewDriver(red, green, blue ChannelWriter) *Driver {
	return &Driver{red: red, green: green, blue: blue}
}

// SetColor applies direct channel intensities (0=off, 255=full).
func (d *Driver) SetColor(r, g, b uint8) {
	d.red.Write(255 - r)
	d.green.Write(255 - g)
	d.blue.Write(255 - b)
}

// Off turns all channels off.
func (d *Driver) Off() {
	d.SetColor(0, 0, 0)
}

// Clamp bounds an arbitrary integer channel value to the 0-255 range.
func Clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
