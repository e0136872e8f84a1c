package assessment

const (
	// focusEpsilon keeps the inverse-confidence weight finite for
	// never-observed axes.
	focusEpsilon = 0.1

	// repeatDamping halves the weight of the axis probed last turn so
	// the conversation rotates instead of hammering one axis.
	repeatDamping = 0.5
)

// SelectFocus picks the axis the next question should target: the one
// with the highest inverse-confidence weight, with the previously
// focused axis damped. previous may be empty (no prior focus). Ties
// resolve in fixed axis order, so identical inputs always give the
// same answer.
func SelectFocus(state State, previous Dimension) Dimension {
	best := Dimensions[0]
	bestWeight := -1.0

	for _, d := range Dimensions {
		w := 1.0 / (state.Get(d).Confidence + focusEpsilon)
		if d == previous {
			w *= repeatDamping
		}
		if w > bestWeight {
			best = d
			bestWeight = w
		}
	}

	return best
}
