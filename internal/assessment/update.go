package assessment

// Tuning constants for the trait updater and completion oracle.
const (
	// NoiseFloor drops single-message signals the analyzer itself
	// isn't sure about.
	NoiseFloor = 0.2

	// Confidence grows by a small fixed step per accepted observation
	// and saturates at ConfidenceCeiling, so a handful of strong early
	// reads can never finish the assessment on their own.
	confidenceStep    = 0.05
	ConfidenceCeiling = 0.7

	// CompletionThreshold is the per-axis confidence every dimension
	// must reach for the assessment to complete on evidence alone.
	CompletionThreshold = 0.7
)

// Observation is one per-axis signal extracted from a single user message.
type Observation struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// Observations maps axes to the signal extracted for them. Axes may be
// absent; absent axes carry their current estimate forward.
type Observations map[Dimension]Observation

// Apply folds one turn's observations into the running estimates and
// returns the new state. The input state is never mutated.
//
// Per axis: signals under the noise floor are discarded; the first
// accepted signal for an axis replaces the zero-confidence estimate
// verbatim; after that, scores blend by confidence-weighted mean and
// confidence advances by a fixed step, capped below 1.0.
func Apply(current State, obs Observations) State {
	next := current

	for _, d := range Dimensions {
		o, ok := obs[d]
		if !ok || o.Confidence < NoiseFloor {
			continue
		}

		cur := current.Get(d)

		if cur.Confidence == 0 {
			// Cold start: take the observation as-is.
			next.set(d, Estimate{Score: o.Score, Confidence: o.Confidence})
			continue
		}

		total := cur.Confidence + o.Confidence
		blended := (cur.Score*cur.Confidence + o.Score*o.Confidence) / total

		conf := cur.Confidence + confidenceStep
		if conf > ConfidenceCeiling {
			conf = ConfidenceCeiling
		}
		// Never walk an already-high confidence back down to the ceiling.
		if conf < cur.Confidence {
			conf = cur.Confidence
		}

		next.set(d, Estimate{Score: blended, Confidence: conf})
	}

	return next
}

// IsComplete decides whether the assessment is finished.
//
// Before minTurns nothing completes, no matter how confident the reads
// are. From minTurns on, the assessment completes once every axis
// clears the confidence threshold. At exactly minTurns it completes
// unconditionally, which bounds conversation length. The equality
// check matters: turns past minTurns only complete on evidence.
func IsComplete(state State, turnCount, minTurns int) bool {
	if turnCount < minTurns {
		return false
	}

	allConfident := true
	for _, d := range Dimensions {
		if state.Get(d).Confidence < CompletionThreshold {
			allConfident = false
			break
		}
	}
	if allConfident {
		return true
	}

	return turnCount == minTurns
}
