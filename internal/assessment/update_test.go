package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyColdStartTakesObservationVerbatim(t *testing.T) {
	state := NewState()

	next := Apply(state, Observations{
		EI: {Score: -0.6, Confidence: 0.4},
	})

	require.Equal(t, Estimate{Score: -0.6, Confidence: 0.4}, next.Get(EI))
	// Untouched axes stay at zero.
	assert.Equal(t, Estimate{}, next.Get(SN))
	assert.Equal(t, Estimate{}, next.Get(TF))
	assert.Equal(t, Estimate{}, next.Get(JP))
}

func TestApplyNoiseFloorDiscardsWeakSignals(t *testing.T) {
	state := NewState()
	state.TF = Estimate{Score: 0.5, Confidence: 0.3}

	next := Apply(state, Observations{
		TF: {Score: -1.0, Confidence: 0.19},
		JP: {Score: 1.0, Confidence: 0.1},
	})

	assert.Equal(t, state.TF, next.Get(TF))
	assert.Equal(t, Estimate{}, next.Get(JP))
}

func TestApplyBlendsByConfidenceWeightedMean(t *testing.T) {
	state := NewState()
	state.EI = Estimate{Score: 0.5, Confidence: 0.4}

	next := Apply(state, Observations{
		EI: {Score: -0.5, Confidence: 0.4},
	})

	// Equal confidences: the means cancel out exactly.
	assert.InDelta(t, 0.0, next.Get(EI).Score, 1e-12)
	assert.InDelta(t, 0.45, next.Get(EI).Confidence, 1e-12)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	state := NewState()
	state.SN = Estimate{Score: 0.2, Confidence: 0.3}
	before := state

	Apply(state, Observations{
		SN: {Score: 0.9, Confidence: 0.8},
	})

	assert.Equal(t, before, state)
}

func TestApplyConfidenceMonotonicAndCapped(t *testing.T) {
	state := NewState()

	prev := 0.0
	for i := 0; i < 30; i++ {
		state = Apply(state, Observations{
			EI: {Score: 0.3, Confidence: 0.5},
			SN: {Score: -0.3, Confidence: 0.25},
			TF: {Score: 0.1, Confidence: 0.9},
			JP: {Score: -0.1, Confidence: 0.15}, // below floor every turn
		})

		for _, d := range Dimensions {
			assert.LessOrEqual(t, state.Get(d).Confidence, 1.0)
		}

		cur := state.Get(EI).Confidence
		require.GreaterOrEqual(t, cur, prev, "confidence must never decrease")
		prev = cur
	}

	assert.InDelta(t, ConfidenceCeiling, state.Get(EI).Confidence, 1e-12)
	// Cold start above the ceiling is kept, never walked back down.
	assert.InDelta(t, 0.9, state.Get(TF).Confidence, 1e-12)
	assert.Equal(t, Estimate{}, state.Get(JP))
}

func TestApplyHandlesMissingAxes(t *testing.T) {
	state := NewState()
	state.JP = Estimate{Score: -0.4, Confidence: 0.5}

	next := Apply(state, Observations{})

	assert.Equal(t, state, next)
}

func TestIsCompleteFloorGate(t *testing.T) {
	state := NewState()
	for _, d := range Dimensions {
		state.set(d, Estimate{Score: 0.5, Confidence: 1.0})
	}

	// Full confidence still can't finish before the floor.
	assert.False(t, IsComplete(state, 4, 5))
}

func TestIsCompleteForcedAtExactFloor(t *testing.T) {
	assert.True(t, IsComplete(NewState(), 5, 5))
}

func TestIsCompleteOnConfidenceAfterFloor(t *testing.T) {
	state := NewState()
	for _, d := range Dimensions {
		state.set(d, Estimate{Score: 0.2, Confidence: CompletionThreshold})
	}

	assert.True(t, IsComplete(state, 6, 5))
}

func TestIsCompleteBeyondFloorNeedsConfidence(t *testing.T) {
	state := NewState()
	state.EI = Estimate{Score: 0.2, Confidence: CompletionThreshold}

	// Past the floor the forced rule no longer fires.
	assert.False(t, IsComplete(state, 6, 5))
}

func TestEndToEndForcedCompletion(t *testing.T) {
	const minTurns = 5

	state := NewState()
	weak := Observations{
		EI: {Score: 0.8, Confidence: 0.1},
		SN: {Score: 0.8, Confidence: 0.1},
		TF: {Score: 0.8, Confidence: 0.1},
		JP: {Score: 0.8, Confidence: 0.1},
	}

	for turn := 1; turn <= 4; turn++ {
		state = Apply(state, weak)
		require.False(t, IsComplete(state, turn, minTurns))
	}
	for _, d := range Dimensions {
		require.Zero(t, state.Get(d).Confidence)
	}

	state = Apply(state, weak)
	assert.True(t, IsComplete(state, 5, minTurns))
}
