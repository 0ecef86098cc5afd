package estimate

import (
	"github.com/chewxy/math32"

	"github.com/itohio/ltesense/pkg/infer"
)

// Standard-score normalization parameters from the training pipeline's
// StandardScaler, in feature order RSRP, RSRQ, SINR, Lat, Lon, Elevation.
var (
	featureMeans = [infer.InputFeatures]float32{
		-92.82158798394855,
		-12.378179738080586,
		5.899808457344924,
		47.850803844157944,
		13.205420546494691,
		592.1170299621222,
	}
	featureScales = [infer.InputFeatures]float32{
		10.85231552752163,
		2.469692534687768,
		9.068259673106164,
		0.004299538384380982,
		0.06606928273926402,
		38.31224337837014,
	}
)

// Learned wraps the inference runtime: normalizes the six inputs, invokes
// the model, clamps the scalar output and rounds to the nearest integer.
type Learned struct {
	rt       *infer.Runtime
	min, max float32
}

// NewLearned creates a learned estimator over a ready runtime.
func NewLearned(rt *infer.Runtime) *Learned {
	return &Learned{rt: rt, min: RSSIMin, max: RSSIMax}
}

func (l *Learned) Estimate(f Features) (int, error) {
	raw := [infer.InputFeatures]float32{
		float32(f.RSRP),
		float32(f.RSRQ),
		float32(f.SINR),
		f.Latitude,
		f.Longitude,
		f.Elevation,
	}

	var in [infer.InputFeatures]float32
	for i := range raw {
		in[i] = (raw[i] - featureMeans[i]) / featureScales[i]
	}

	y, err := l.rt.Invoke(in[:])
	if err != nil {
		return 0, err
	}

	y = math32.Min(math32.Max(y, l.min), l.max)
	return int(math32.Round(y)), nil
}
