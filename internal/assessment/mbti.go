package assessment

// TypeFromState derives the 4-letter MBTI code from the current score
// signs. The per-axis conditions are intentionally asymmetric: E needs
// a strictly positive score, while S, T and J need strictly negative
// ones, so an all-zero state resolves to INFP.
func TypeFromState(s State) string {
	code := make([]byte, 0, 4)

	if s.EI.Score > 0 {
		code = append(code, 'E')
	} else {
		code = append(code, 'I')
	}

	if s.SN.Score < 0 {
		code = append(code, 'S')
	} else {
		code = append(code, 'N')
	}

	if s.TF.Score < 0 {
		code = append(code, 'T')
	} else {
		code = append(code, 'F')
	}

	if s.JP.Score < 0 {
		code = append(code, 'J')
	} else {
		code = append(code, 'P')
	}

	return string(code)
}

// AxisReasoning reports, for one axis, which side won and how strong
// the read was.
type AxisReasoning struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// Reasoning explains each axis of the derived type using the same sign
// conventions as TypeFromState. Scores are reported as magnitudes.
func Reasoning(s State) map[Dimension]AxisReasoning {
	r := make(map[Dimension]AxisReasoning, 4)

	label := "Introverted"
	if s.EI.Score > 0 {
		label = "Extraverted"
	}
	r[EI] = AxisReasoning{Label: label, Score: abs(s.EI.Score), Confidence: s.EI.Confidence}

	label = "Intuitive"
	if s.SN.Score < 0 {
		label = "Sensing"
	}
	r[SN] = AxisReasoning{Label: label, Score: abs(s.SN.Score), Confidence: s.SN.Confidence}

	label = "Feeling"
	if s.TF.Score < 0 {
		label = "Thinking"
	}
	r[TF] = AxisReasoning{Label: label, Score: abs(s.TF.Score), Confidence: s.TF.Confidence}

	label = "Perceiving"
	if s.JP.Score < 0 {
		label = "Judging"
	}
	r[JP] = AxisReasoning{Label: label, Score: abs(s.JP.Score), Confidence: s.JP.Confidence}

	return r
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
