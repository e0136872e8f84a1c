package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectFocusPrefersLowestConfidence(t *testing.T) {
	state := NewState()
	state.EI = Estimate{Confidence: 0.6}
	state.SN = Estimate{Confidence: 0.5}
	state.TF = Estimate{Confidence: 0.1}
	state.JP = Estimate{Confidence: 0.4}

	assert.Equal(t, TF, SelectFocus(state, ""))
}

func TestSelectFocusTieBreaksInAxisOrder(t *testing.T) {
	// All zero: every axis has the same weight, first axis wins.
	assert.Equal(t, EI, SelectFocus(NewState(), ""))
}

func TestSelectFocusIsDeterministic(t *testing.T) {
	state := NewState()
	state.EI = Estimate{Confidence: 0.3}
	state.SN = Estimate{Confidence: 0.3}

	first := SelectFocus(state, TF)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectFocus(state, TF))
	}
}

func TestSelectFocusDampsPreviousFocus(t *testing.T) {
	state := NewState()
	state.EI = Estimate{Confidence: 0.15} // lowest confidence, but probed last turn
	state.SN = Estimate{Confidence: 0.2}
	state.TF = Estimate{Confidence: 0.6}
	state.JP = Estimate{Confidence: 0.6}

	// Halving EI's weight (1/0.25 = 4 -> 2) drops it below SN (1/0.3 ≈ 3.33).
	assert.Equal(t, SN, SelectFocus(state, EI))
}

func TestSelectFocusReturnsPreviousWhenStillFarAhead(t *testing.T) {
	state := NewState()
	state.SN = Estimate{Confidence: 0.65}
	state.TF = Estimate{Confidence: 0.65}
	state.JP = Estimate{Confidence: 0.65}

	// Even halved, a never-observed axis outweighs well-covered ones.
	assert.Equal(t, EI, SelectFocus(state, EI))
}
