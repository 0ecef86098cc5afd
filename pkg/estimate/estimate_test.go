package estimate

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/ltesense/pkg/infer"
)

// singleLayerModel encodes a 6->1 linear model blob with the given weights
// and bias, so tests can exercise the learned path with known arithmetic.
func singleLayerModel(t *testing.T, weights [6]float32, bias float32) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	buf.WriteString("RSNM")
	require.NoError(t, binary.Write(buf, binary.LittleEndian, uint16(infer.FormatVersion)))
	require.NoError(t, binary.Write(buf, binary.LittleEndian, uint16(1)))
	require.NoError(t, binary.Write(buf, binary.LittleEndian, uint16(6)))
	require.NoError(t, binary.Write(buf, binary.LittleEndian, uint16(1)))
	buf.WriteByte(0) // linear
	buf.WriteByte(0)
	require.NoError(t, binary.Write(buf, binary.LittleEndian, weights[:]))
	require.NoError(t, binary.Write(buf, binary.LittleEndian, bias))
	return buf.Bytes()
}

func learnedFromModel(t *testing.T, model []byte) *Learned {
	t.Helper()

	rt, err := infer.Load(model, infer.ArenaSize)
	require.NoError(t, err)
	return NewLearned(rt)
}

func TestFormula_Estimate(t *testing.T) {
	tests := []struct {
		name string
		rsrp int
		rsrq int
		want int
	}{
		{"typical measurement", -90, -10, -66},
		{"strong signal clamps high", -60, -50, -25},
		{"at lower bound", -120, 14, -120},
		{"weak signal clamps low", -125, 10, -120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Formula{}.Estimate(Features{RSRP: tt.rsrp, RSRQ: tt.rsrq})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormula_IgnoresPosition(t *testing.T) {
	a, err := Formula{}.Estimate(Features{RSRP: -90, RSRQ: -10})
	require.NoError(t, err)
	b, err := Formula{}.Estimate(Features{RSRP: -90, RSRQ: -10, SINR: 20, Latitude: 47.8, Longitude: 13.2, Elevation: 600})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLearned_ConstantModel(t *testing.T) {
	l := learnedFromModel(t, singleLayerModel(t, [6]float32{}, -77.4))

	got, err := l.Estimate(Features{RSRP: -90, RSRQ: -10, SINR: 5})
	require.NoError(t, err)
	assert.Equal(t, -77, got)
}

func TestLearned_ClampsOutput(t *testing.T) {
	low := learnedFromModel(t, singleLayerModel(t, [6]float32{}, -200))
	got, err := low.Estimate(Features{})
	require.NoError(t, err)
	assert.Equal(t, RSSIMin, got)

	high := learnedFromModel(t, singleLayerModel(t, [6]float32{}, 10))
	got, err = high.Estimate(Features{})
	require.NoError(t, err)
	assert.Equal(t, RSSIMax, got)
}

func TestLearned_NormalizesInputs(t *testing.T) {
	// Weight only the RSRP feature. With standard-score normalization,
	// RSRP=-70 maps to roughly +2.103, so the output lands near -79. An
	// unnormalized -70 would saturate the lower clamp instead.
	l := learnedFromModel(t, singleLayerModel(t, [6]float32{10, 0, 0, 0, 0, 0}, -100))

	got, err := l.Estimate(Features{RSRP: -70, RSRQ: -10, SINR: 5})
	require.NoError(t, err)
	assert.Equal(t, -79, got)
}

func TestSelector_DisabledUsesFormula(t *testing.T) {
	l := learnedFromModel(t, singleLayerModel(t, [6]float32{}, -50))
	s := NewSelector(false, l)

	got, usedModel := s.Estimate(Features{RSRP: -90, RSRQ: -10})
	assert.Equal(t, -66, got)
	assert.False(t, usedModel)
}

func TestSelector_NilLearnedNotReady(t *testing.T) {
	s := NewSelector(true, nil)

	assert.False(t, s.Ready())
	got, usedModel := s.Estimate(Features{RSRP: -90, RSRQ: -10})
	assert.Equal(t, -66, got)
	assert.False(t, usedModel)
}

func TestSelector_UsesLearnedWhenReady(t *testing.T) {
	l := learnedFromModel(t, singleLayerModel(t, [6]float32{}, -77))
	s := NewSelector(true, l)

	assert.True(t, s.Ready())
	got, usedModel := s.Estimate(Features{RSRP: -90, RSRQ: -10})
	assert.Equal(t, -77, got)
	assert.True(t, usedModel)
}

func TestSelector_FallsBackOnModelFailure(t *testing.T) {
	// An infinite bias forces a non-finite output from every invocation.
	l := learnedFromModel(t, singleLayerModel(t, [6]float32{}, float32(math.Inf(1))))
	s := NewSelector(true, l)

	got, usedModel := s.Estimate(Features{RSRP: -90, RSRQ: -10})
	assert.Equal(t, -66, got)
	assert.False(t, usedModel)
	// A per-call failure does not retire the learned path.
	assert.True(t, s.Ready())
}
