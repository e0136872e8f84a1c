package assessment

// Dimension is one of the four MBTI trait axes.
type Dimension string

const (
	EI Dimension = "E_I"
	SN Dimension = "S_N"
	TF Dimension = "T_F"
	JP Dimension = "J_P"
)

// Dimensions is the fixed axis order. It doubles as the deterministic
// tie-break order for focus selection.
var Dimensions = [4]Dimension{EI, SN, TF, JP}

// Valid reports whether d is one of the four known axes.
func (d Dimension) Valid() bool {
	switch d {
	case EI, SN, TF, JP:
		return true
	}
	return false
}

// Estimate is the running read for one axis.
// Score: -1.0 .. 1.0, Confidence: 0.0 .. 1.0.
type Estimate struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// State holds the four per-axis estimates. One fixed field per axis,
// so a missing dimension can't exist by construction.
type State struct {
	EI Estimate `json:"E_I"`
	SN Estimate `json:"S_N"`
	TF Estimate `json:"T_F"`
	JP Estimate `json:"J_P"`
}

// NewState returns a fresh state with all estimates at zero.
func NewState() State {
	return State{}
}

// Get returns the estimate for one axis.
func (s State) Get(d Dimension) Estimate {
	switch d {
	case EI:
		return s.EI
	case SN:
		return s.SN
	case TF:
		return s.TF
	case JP:
		return s.JP
	}
	return Estimate{}
}

func (s *State) set(d Dimension, e Estimate) {
	switch d {
	case EI:
		s.EI = e
	case SN:
		s.SN = e
	case TF:
		s.TF = e
	case JP:
		s.JP = e
	}
}
