// Package estimate fills in missing RSSI values. Two interchangeable
// estimators share one signature: a closed-form formula and a learned
// model running on the infer runtime. Selection between them is explicit
// and per-call failures of the learned path fall back to the formula.
package estimate

// RSSI output bounds in dBm, shared by both estimators.
const (
	RSSIMin = -120
	RSSIMax = -25
)

// formulaOffset comes from the 10 MHz channel-bandwidth assumption:
// RSSI = RSRP - RSRQ + 10*log10(50 resource blocks / 2) rounded to 14.
const formulaOffset = 14

// Features is the ordered estimator input: three signal-quality measures
// and the geographic position of the measurement.
type Features struct {
	RSRP      int
	RSRQ      int
	SINR      int
	Latitude  float32
	Longitude float32
	Elevation float32
}

// Estimator produces an RSSI estimate in dBm from a feature set.
type Estimator interface {
	Estimate(f Features) (int, error)
}

// Formula is the closed-form estimator. It is pure, never fails, and
// only consumes the RSRP/RSRQ terms.
type Formula struct{}

func (Formula) Estimate(f Features) (int, error) {
	return clampInt(f.RSRP-f.RSRQ+formulaOffset, RSSIMin, RSSIMax), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
