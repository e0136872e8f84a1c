package chat

import (
	"context"
	"log"

	"github.com/Minggyul/mbti-chat/internal/assessment"
)

// Message is one conversation entry, role "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Directive tells the reply generator what the next utterance is for:
// either wrap up a finished assessment (Type set) or steer the
// conversation toward one axis (Focus set).
type Directive struct {
	Completed bool
	Type      string
	Focus     assessment.Dimension
	TurnCount int
	MinTurns  int
	State     assessment.State
}

// Analyzer extracts per-axis trait signal from the latest user message.
type Analyzer interface {
	AnalyzeTraits(ctx context.Context, history []Message, userMessage string) (assessment.Observations, error)
}

// Generator produces the next assistant utterance.
type Generator interface {
	GenerateReply(ctx context.Context, history []Message, d Directive) (string, error)
}

// FallbackReply is used whenever reply generation fails. The
// conversation keeps going either way.
const FallbackReply = "I'm having a little trouble finding my words. Shall we keep chatting? How has your day been going?"

// TurnInput is everything one turn depends on. The engine keeps no
// state of its own; the caller persists TurnResult between turns.
type TurnInput struct {
	UserMessage   string
	History       []Message
	State         assessment.State
	Completed     bool
	TurnCount     int
	MinTurns      int
	PreviousFocus assessment.Dimension
}

// TurnResult is the full outcome of one turn. Observations is nil when
// analysis failed or was skipped.
type TurnResult struct {
	Response     string
	State        assessment.State
	Completed    bool
	Focus        assessment.Dimension
	Observations assessment.Observations
}

// Engine runs one assessment turn: analyze, update, check completion,
// pick the next focus, generate the reply. Both collaborator failures
// are recovered here, so a turn always yields a usable result.
type Engine struct {
	Analyzer  Analyzer
	Generator Generator
}

func NewEngine(a Analyzer, g Generator) *Engine {
	return &Engine{Analyzer: a, Generator: g}
}

func (e *Engine) ProcessTurn(ctx context.Context, in TurnInput) TurnResult {
	// The reply prompt must see the message being replied to; History
	// only holds the turns before it.
	convo := make([]Message, 0, len(in.History)+1)
	convo = append(convo, in.History...)
	convo = append(convo, Message{Role: "user", Content: in.UserMessage})

	// Finished assessments just keep the conversation going.
	if in.Completed {
		d := Directive{
			Completed: true,
			Type:      assessment.TypeFromState(in.State),
			TurnCount: in.TurnCount,
			MinTurns:  in.MinTurns,
			State:     in.State,
		}
		return TurnResult{
			Response:  e.generate(ctx, convo, d),
			State:     in.State,
			Completed: true,
		}
	}

	state := in.State
	var obs assessment.Observations

	result, err := e.Analyzer.AnalyzeTraits(ctx, in.History, in.UserMessage)
	if err != nil {
		// Fail-safe: this turn simply carried no trait signal.
		log.Printf("trait analysis failed, keeping estimates: %v", err)
	} else {
		obs = result
		state = assessment.Apply(state, result)
	}

	completed := assessment.IsComplete(state, in.TurnCount, in.MinTurns)

	d := Directive{
		Completed: completed,
		TurnCount: in.TurnCount,
		MinTurns:  in.MinTurns,
		State:     state,
	}

	var focus assessment.Dimension
	if completed {
		d.Type = assessment.TypeFromState(state)
	} else {
		focus = assessment.SelectFocus(state, in.PreviousFocus)
		d.Focus = focus
	}

	reply, err := e.Generator.GenerateReply(ctx, convo, d)
	if err != nil {
		log.Printf("reply generation failed, using fallback: %v", err)
		reply = FallbackReply
		focus = ""
	}

	return TurnResult{
		Response:     reply,
		State:        state,
		Completed:    completed,
		Focus:        focus,
		Observations: obs,
	}
}

func (e *Engine) generate(ctx context.Context, history []Message, d Directive) string {
	reply, err := e.Generator.GenerateReply(ctx, history, d)
	if err != nil {
		log.Printf("reply generation failed, using fallback: %v", err)
		return FallbackReply
	}
	return reply
}
