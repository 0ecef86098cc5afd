package estimate

// Selector implements the estimator selection policy: the learned path is
// used only when it was enabled at build time AND the inference runtime
// came up ready. A single learned-path failure falls back to the formula
// for that call only; it never flips the ready state.
type Selector struct {
	formula  Formula
	learned  *Learned
	useModel bool
}

// NewSelector builds a selector. learned may be nil when the runtime
// failed to initialize; the selector then reports not-ready forever.
func NewSelector(useModel bool, learned *Learned) *Selector {
	return &Selector{useModel: useModel, learned: learned}
}

// Ready reports whether the learned path is available.
func (s *Selector) Ready() bool {
	return s.learned != nil
}

// Estimate resolves an RSSI value and reports which path produced it
// (true when the learned estimator was used).
func (s *Selector) Estimate(f Features) (int, bool) {
	if s.useModel && s.learned != nil {
		if v, err := s.learned.Estimate(f); err == nil {
			return v, true
		}
		// Soft per-call failure: substitute the formula, keep the model.
	}
	v, _ := s.formula.Estimate(f)
	return v, false
}
