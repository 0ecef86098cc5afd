package infer

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLayer struct {
	in, out int
	act     byte
	weights []float32
	bias    []float32
}

func buildModel(t *testing.T, version uint16, layers []testLayer) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	buf.WriteString("RSNM")
	require.NoError(t, binary.Write(buf, binary.LittleEndian, version))
	require.NoError(t, binary.Write(buf, binary.LittleEndian, uint16(len(layers))))
	for _, l := range layers {
		require.NoError(t, binary.Write(buf, binary.LittleEndian, uint16(l.in)))
		require.NoError(t, binary.Write(buf, binary.LittleEndian, uint16(l.out)))
		buf.WriteByte(l.act)
		buf.WriteByte(0)
		require.NoError(t, binary.Write(buf, binary.LittleEndian, l.weights))
		require.NoError(t, binary.Write(buf, binary.LittleEndian, l.bias))
	}
	return buf.Bytes()
}

// identityFirst is a 6->1 linear layer that passes through the first
// feature and adds a bias.
func identityFirst(bias float32) testLayer {
	return testLayer{
		in:      6,
		out:     1,
		act:     actLinear,
		weights: []float32{1, 0, 0, 0, 0, 0},
		bias:    []float32{bias},
	}
}

func TestLoad_And_Invoke_SingleLayer(t *testing.T) {
	model := buildModel(t, FormatVersion, []testLayer{identityFirst(0.5)})

	rt, err := Load(model, ArenaSize)
	require.NoError(t, err)
	assert.Equal(t, 6, rt.InputSize())

	y, err := rt.Invoke([]float32{2, 99, -7, 3, 1, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, y, 1e-6)
}

func TestInvoke_ReLUClipsNegativeUnits(t *testing.T) {
	// Two hidden units: one sees +x0, one sees -x0. After ReLU only the
	// positive one survives; the output layer sums both.
	model := buildModel(t, FormatVersion, []testLayer{
		{
			in:  6,
			out: 2,
			act: actReLU,
			weights: []float32{
				1, 0, 0, 0, 0, 0,
				-1, 0, 0, 0, 0, 0,
			},
			bias: []float32{0, 0},
		},
		{
			in:      2,
			out:     1,
			act:     actLinear,
			weights: []float32{1, 1},
			bias:    []float32{0},
		},
	})

	rt, err := Load(model, ArenaSize)
	require.NoError(t, err)

	y, err := rt.Invoke([]float32{3, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, y, 1e-6)

	y, err = rt.Invoke([]float32{-4, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, y, 1e-6)
}

func TestLoad_Failures(t *testing.T) {
	valid := buildModel(t, FormatVersion, []testLayer{identityFirst(0)})

	badMagic := append([]byte(nil), valid...)
	copy(badMagic, "XXXX")

	tests := []struct {
		name  string
		model []byte
		arena int
	}{
		{"truncated header", valid[:6], ArenaSize},
		{"bad magic", badMagic, ArenaSize},
		{"version mismatch", buildModel(t, FormatVersion+1, []testLayer{identityFirst(0)}), ArenaSize},
		{"no layers", buildModel(t, FormatVersion, nil), ArenaSize},
		{"truncated weights", valid[:len(valid)-8], ArenaSize},
		{"trailing bytes", append(append([]byte(nil), valid...), 0, 0), ArenaSize},
		{"wrong input width", buildModel(t, FormatVersion, []testLayer{{
			in: 4, out: 1, act: actLinear,
			weights: []float32{1, 0, 0, 0}, bias: []float32{0},
		}}), ArenaSize},
		{"multiple outputs", buildModel(t, FormatVersion, []testLayer{{
			in: 6, out: 2, act: actLinear,
			weights: make([]float32, 12), bias: make([]float32, 2),
		}}), ArenaSize},
		{"layer dimension mismatch", buildModel(t, FormatVersion, []testLayer{
			{in: 6, out: 4, act: actReLU, weights: make([]float32, 24), bias: make([]float32, 4)},
			{in: 3, out: 1, act: actLinear, weights: make([]float32, 3), bias: make([]float32, 1)},
		}), ArenaSize},
		{"unknown activation", buildModel(t, FormatVersion, []testLayer{{
			in: 6, out: 1, act: 9,
			weights: make([]float32, 6), bias: make([]float32, 1),
		}}), ArenaSize},
		{"arena too small for model", valid, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := Load(tt.model, tt.arena)
			assert.Error(t, err)
			assert.Nil(t, rt)
		})
	}
}

func TestInvoke_WrongFeatureCount(t *testing.T) {
	rt, err := Load(buildModel(t, FormatVersion, []testLayer{identityFirst(0)}), ArenaSize)
	require.NoError(t, err)

	_, err = rt.Invoke([]float32{1, 2, 3})
	assert.Error(t, err)
}

func TestInvoke_NonFiniteOutput(t *testing.T) {
	// Saturating weights overflow float32 and must surface as an error,
	// not as a bogus estimate.
	huge := float32(3.4e38)
	rt, err := Load(buildModel(t, FormatVersion, []testLayer{{
		in: 6, out: 1, act: actLinear,
		weights: []float32{huge, huge, huge, huge, huge, huge},
		bias:    []float32{0},
	}}), ArenaSize)
	require.NoError(t, err)

	_, err = rt.Invoke([]float32{10, 10, 10, 10, 10, 10})
	assert.Error(t, err)

	// The runtime stays usable after a failed invocation.
	_, err = rt.Invoke([]float32{0, 0, 0, 0, 0, 0})
	assert.NoError(t, err)
}

func TestArena_RejectsOverflow(t *testing.T) {
	a := NewArena(16) // room for 4 floats

	s, err := a.alloc(3)
	require.NoError(t, err)
	assert.Len(t, s, 3)
	assert.Equal(t, 12, a.Used())

	_, err = a.alloc(2)
	assert.Error(t, err)
	// A failed allocation must not consume capacity.
	assert.Equal(t, 12, a.Used())
}

func TestEmbeddedModel_Loads(t *testing.T) {
	rt, err := Load(ModelData, ArenaSize)
	require.NoError(t, err)
	assert.Equal(t, InputFeatures, rt.InputSize())

	y, err := rt.Invoke([]float32{0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	// The output layer is biased around the dataset RSSI mean.
	assert.Less(t, y, float32(0))
}
