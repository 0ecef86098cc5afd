// Package infer is a minimal feed-forward inference runtime for the
// embedded RSSI model. It mirrors the constraints of a microcontroller
// NN runtime: the model blob is parsed once at start-up, every tensor
// lives inside a fixed-size preallocated arena, and nothing grows after
// initialization.
package infer

import (
	"encoding/binary"
	"fmt"

	"github.com/chewxy/math32"
)

const (
	// FormatVersion is the model blob schema version this runtime accepts.
	FormatVersion = 3
	// InputFeatures is the expected width of the model's input tensor.
	InputFeatures = 6
	// ArenaSize is the default tensor arena capacity in bytes.
	ArenaSize = 10 * 1024
)

// Layer activation codes in the model blob.
const (
	actLinear = 0
	actReLU   = 1
)

var magic = [4]byte{'R', 'S', 'N', 'M'}

// Arena is a fixed-capacity float32 pool. Allocations that would exceed
// the capacity are rejected, never truncated.
type Arena struct {
	buf  []float32
	used int
}

// NewArena preallocates an arena of the given size in bytes.
func NewArena(sizeBytes int) *Arena {
	return &Arena{buf: make([]float32, sizeBytes/4)}
}

func (a *Arena) alloc(n int) ([]float32, error) {
	if a.used+n > len(a.buf) {
		return nil, fmt.Errorf("arena exhausted: need %d floats, %d of %d used", n, a.used, len(a.buf))
	}
	s := a.buf[a.used : a.used+n : a.used+n]
	a.used += n
	return s, nil
}

// Used reports how many bytes of the arena are allocated.
func (a *Arena) Used() int { return a.used * 4 }

type layer struct {
	in, out    int
	activation uint8
	weights    []float32 // out rows of in weights
	bias       []float32 // out
}

// Runtime holds the parsed model and its arena-backed tensors.
type Runtime struct {
	layers  []layer
	input   []float32
	scratch [2][]float32
}

// Load parses a model blob and builds a runtime bound to a fresh arena of
// arenaBytes capacity. Any failure here is a hard start-up failure: the
// caller must treat the learned path as permanently unavailable.
func Load(model []byte, arenaBytes int) (*Runtime, error) {
	if len(model) < 8 {
		return nil, fmt.Errorf("model blob truncated: %d bytes", len(model))
	}
	if model[0] != magic[0] || model[1] != magic[1] || model[2] != magic[2] || model[3] != magic[3] {
		return nil, fmt.Errorf("bad model magic %q", model[:4])
	}
	version := binary.LittleEndian.Uint16(model[4:6])
	if version != FormatVersion {
		return nil, fmt.Errorf("model format version %d, expected %d", version, FormatVersion)
	}
	layerCount := int(binary.LittleEndian.Uint16(model[6:8]))
	if layerCount == 0 {
		return nil, fmt.Errorf("model has no layers")
	}

	arena := NewArena(arenaBytes)
	rt := &Runtime{layers: make([]layer, 0, layerCount)}

	off := 8
	maxWidth := 0
	for i := 0; i < layerCount; i++ {
		if off+6 > len(model) {
			return nil, fmt.Errorf("model blob truncated in layer %d header", i)
		}
		in := int(binary.LittleEndian.Uint16(model[off : off+2]))
		out := int(binary.LittleEndian.Uint16(model[off+2 : off+4]))
		act := model[off+4]
		off += 6

		if in == 0 || out == 0 {
			return nil, fmt.Errorf("layer %d has zero dimension %dx%d", i, in, out)
		}
		if act != actLinear && act != actReLU {
			return nil, fmt.Errorf("layer %d has unknown activation %d", i, act)
		}
		if i > 0 && in != rt.layers[i-1].out {
			return nil, fmt.Errorf("layer %d input %d does not match previous output %d", i, in, rt.layers[i-1].out)
		}

		weights, err := readTensor(model, &off, in*out, arena)
		if err != nil {
			return nil, fmt.Errorf("layer %d weights: %w", i, err)
		}
		bias, err := readTensor(model, &off, out, arena)
		if err != nil {
			return nil, fmt.Errorf("layer %d bias: %w", i, err)
		}

		if out > maxWidth {
			maxWidth = out
		}
		rt.layers = append(rt.layers, layer{in: in, out: out, activation: act, weights: weights, bias: bias})
	}
	if off != len(model) {
		return nil, fmt.Errorf("model blob has %d trailing bytes", len(model)-off)
	}

	if rt.layers[0].in != InputFeatures {
		return nil, fmt.Errorf("model expects %d inputs, runtime expects %d", rt.layers[0].in, InputFeatures)
	}
	if rt.layers[len(rt.layers)-1].out != 1 {
		return nil, fmt.Errorf("model emits %d outputs, expected 1", rt.layers[len(rt.layers)-1].out)
	}

	var err error
	if rt.input, err = arena.alloc(rt.layers[0].in); err != nil {
		return nil, fmt.Errorf("input tensor: %w", err)
	}
	for i := range rt.scratch {
		if rt.scratch[i], err = arena.alloc(maxWidth); err != nil {
			return nil, fmt.Errorf("scratch tensor %d: %w", i, err)
		}
	}

	return rt, nil
}

// readTensor decodes n float32 values from the blob into arena memory.
func readTensor(model []byte, off *int, n int, arena *Arena) ([]float32, error) {
	if *off+n*4 > len(model) {
		return nil, fmt.Errorf("blob truncated: need %d floats at offset %d", n, *off)
	}
	dst, err := arena.alloc(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint32(model[*off+i*4:])
		dst[i] = math32.Float32frombits(bits)
	}
	*off += n * 4
	return dst, nil
}

// InputSize returns the width of the input tensor.
func (rt *Runtime) InputSize() int { return rt.layers[0].in }

// Invoke runs one forward pass and returns the scalar output. A non-finite
// result is reported as an error; the runtime itself stays usable.
func (rt *Runtime) Invoke(features []float32) (float32, error) {
	if len(features) != rt.layers[0].in {
		return 0, fmt.Errorf("got %d features, model expects %d", len(features), rt.layers[0].in)
	}
	copy(rt.input, features)

	src := rt.input
	for i, l := range rt.layers {
		dst := rt.scratch[i%2][:l.out]
		for o := 0; o < l.out; o++ {
			acc := l.bias[o]
			w := l.weights[o*l.in : (o+1)*l.in]
			for j := 0; j < l.in; j++ {
				acc += w[j] * src[j]
			}
			if l.activation == actReLU {
				acc = math32.Max(0, acc)
			}
			dst[o] = acc
		}
		src = dst
	}

	y := src[0]
	if math32.IsNaN(y) || math32.IsInf(y, 0) {
		return 0, fmt.Errorf("non-finite model output")
	}
	return y, nil
}
