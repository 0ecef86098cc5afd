package core

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/itohio/ltesense/pkg/estimate"
	"github.com/itohio/ltesense/pkg/proto"
	"github.com/itohio/ltesense/pkg/record"
	"github.com/itohio/ltesense/pkg/rgb"
)

// dispatch routes one trimmed, non-empty command line.
func (c *Core) dispatch(line string) {
	kind, payload := proto.Classify(line)

	switch kind {
	case proto.KindLEDOn:
		c.led.Set(true)
		c.reply(proto.AckLEDOn)

	case proto.KindLEDOff:
		c.led.Set(false)
		c.reply(proto.AckLEDOff)

	case proto.KindRGB:
		c.handleRGB(payload, line)

	case proto.KindStreamStart:
		c.state.StreamActive = true
		c.state.RecordCount = 0
		c.reply(proto.AckStreamStart)

	case proto.KindStreamStop:
		c.state.StreamActive = false
		c.reply(proto.AckStreamStop)

	case proto.KindStreamReset:
		c.state.StreamActive = false
		c.state.RecordCount = 0
		c.reply(proto.AckStreamReset)

	case proto.KindData:
		c.handleData(payload, line)

	default:
		c.reply(proto.ErrUnknownCmd(line))
	}
}

// handleRGB parses three integer channels, clamps each to 0-255 before
// applying, and acknowledges with the clamped values.
func (c *Core) handleRGB(payload, line string) {
	parts := strings.Split(payload, ",")
	if len(parts) != 3 {
		c.reply(proto.ErrBadRGB(line))
		return
	}

	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			c.reply(proto.ErrBadRGB(line))
			return
		}
		vals[i] = v
	}

	r, g, b := rgb.Clamp(vals[0]), rgb.Clamp(vals[1]), rgb.Clamp(vals[2])
	c.colors.SetColor(r, g, b)
	c.reply(proto.AckRGB(r, g, b))
}

// handleData runs the record processor: parse, estimate when RSSI is
// missing, flag anomalies, and emit exactly one result per inbound line.
func (c *Core) handleData(payload, line string) {
	if !c.state.StreamActive {
		c.reply(proto.ErrNotStreaming)
		return
	}

	rec, err := record.Parse(payload)
	if err != nil {
		c.reply(proto.ErrParseFailed(line))
		return
	}

	c.state.RecordCount++

	rssi := int(rec.RSSI)
	calculated := false
	if rec.MissingRSSI() {
		rssi, _ = c.est.Estimate(estimate.Features{
			RSRP:      int(rec.RSRP),
			RSRQ:      int(rec.RSRQ),
			SINR:      int(rec.SINR),
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			Elevation: rec.Elevation,
		})
		calculated = true
	}

	msg := record.NewProcessed(rec, rssi, calculated, c.state.RecordCount)
	data, err := json.Marshal(msg)
	if err != nil {
		c.reply(proto.ErrParseFailed(line))
		return
	}
	c.out.Write(data)
	c.out.Write([]byte{'\n'})
}
