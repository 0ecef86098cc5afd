package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constProbe(key string, value any) Probe {
	return func() (string, any, bool) { return key, value, true }
}

func silentProbe() Probe {
	return func() (string, any, bool) { return "", nil, false }
}

func TestPublisher_Cadence(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(&buf, time.Second, constProbe(KeyTemperature, 22.5))

	t0 := time.Unix(1000, 0)

	// First tick always fires.
	require.NoError(t, p.Tick(t0))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))

	// Under the interval: silent.
	require.NoError(t, p.Tick(t0.Add(400*time.Millisecond)))
	require.NoError(t, p.Tick(t0.Add(900*time.Millisecond)))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))

	// At the interval: fires again.
	require.NoError(t, p.Tick(t0.Add(time.Second)))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestPublisher_SparsePayload(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(&buf, time.Second,
		constProbe(KeyTemperature, 22.5),
		silentProbe(),
		constProbe(KeyAccel, Vec3{X: 0.01, Y: -0.02, Z: 0.98}),
	)

	require.NoError(t, p.Tick(time.Unix(1000, 0)))

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Len(t, payload, 2)
	assert.Contains(t, payload, KeyTemperature)
	assert.Contains(t, payload, KeyAccel)

	var acc Vec3
	require.NoError(t, json.Unmarshal(payload[KeyAccel], &acc))
	assert.InDelta(t, 0.98, acc.Z, 1e-6)
}

func TestPublisher_EmptyTickEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(&buf, time.Second, silentProbe(), silentProbe())

	t0 := time.Unix(1000, 0)
	require.NoError(t, p.Tick(t0))
	assert.Zero(t, buf.Len())

	// The cadence still advanced: the next tick inside the interval is
	// silent even with data available.
	p.probes = append(p.probes, constProbe(KeyProximity, 42))
	require.NoError(t, p.Tick(t0.Add(100*time.Millisecond)))
	assert.Zero(t, buf.Len())

	require.NoError(t, p.Tick(t0.Add(time.Second)))
	assert.Contains(t, buf.String(), KeyProximity)
}

func TestPublisher_ColorEncoding(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(&buf, time.Second, constProbe(KeyColor, Color{R: 10, G: 20, B: 30, C: 60}))

	require.NoError(t, p.Tick(time.Unix(1000, 0)))
	assert.JSONEq(t, `{"apds_color":{"r":10,"g":20,"b":30,"c":60}}`, buf.String())
}

func TestNewPublisher_DefaultInterval(t *testing.T) {
	p := NewPublisher(&bytes.Buffer{}, 0)
	assert.Equal(t, DefaultInterval, p.interval)
}
