package chat

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/Minggyul/mbti-chat/internal/assessment"
	"github.com/Minggyul/mbti-chat/internal/questionlog"
	"github.com/Minggyul/mbti-chat/internal/session"
	"github.com/Minggyul/mbti-chat/internal/store"
)

// promptWindow is how much history each turn's prompts see.
const promptWindow = 8

type Handler struct {
	Engine   *Engine
	Store    *store.ConversationStore
	Cache    *store.Cache
	Sessions session.Manager
	DB       *sql.DB
	MinTurns int
}

func NewHandler(engine *Engine, st *store.ConversationStore, cache *store.Cache, sessions session.Manager, db *sql.DB, minTurns int) *Handler {
	return &Handler{
		Engine:   engine,
		Store:    st,
		Cache:    cache,
		Sessions: sessions,
		DB:       db,
		MinTurns: minTurns,
	}
}

// Chat runs one assessment turn for the session's conversation.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	sid := h.Sessions.Ensure(w, r)

	conv, err := h.Store.LatestBySession(ctx, sid)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if conv == nil {
		conv, err = h.Store.Create(ctx, sid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
	}

	history := h.history(r, conv.ID)

	// User messages only; assistant replies don't count toward the floor.
	turnCount := conv.MessageCount + 1

	result := h.Engine.ProcessTurn(ctx, TurnInput{
		UserMessage:   body.Message,
		History:       history,
		State:         conv.State,
		Completed:     conv.IsComplete,
		TurnCount:     turnCount,
		MinTurns:      h.MinTurns,
		PreviousFocus: conv.LastFocus,
	})

	if err := h.Store.AppendMessage(ctx, conv.ID, "user", body.Message, result.Observations); err != nil {
		log.Printf("persist user message: %v", err)
	}
	if err := h.Store.AppendMessage(ctx, conv.ID, "assistant", result.Response, nil); err != nil {
		log.Printf("persist assistant message: %v", err)
	}

	conv.State = result.State
	conv.IsComplete = result.Completed
	conv.MessageCount = turnCount
	conv.LastFocus = result.Focus
	if result.Completed {
		conv.MBTIResult = assessment.TypeFromState(result.State)
	}
	if err := h.Store.SaveTurn(ctx, conv); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if err := h.Cache.PushMessage(ctx, conv.ID, store.Message{Role: "user", Content: body.Message}); err != nil {
		log.Printf("cache push: %v", err)
	}
	if err := h.Cache.PushMessage(ctx, conv.ID, store.Message{Role: "assistant", Content: result.Response}); err != nil {
		log.Printf("cache push: %v", err)
	}

	if q := questionlog.Extract(result.Response); q != "" && result.Focus != "" {
		questionlog.Log(ctx, h.DB, conv.ID, q, result.Focus)
	}

	resp := map[string]any{
		"response":            result.Response,
		"assessment_state":    result.State,
		"assessment_complete": result.Completed,
		"message_count":       turnCount,
		"min_messages_needed": h.MinTurns,
		"progress_percentage": progress(turnCount, h.MinTurns),
	}
	if result.Completed {
		resp["mbti_type"] = conv.MBTIResult
		resp["mbti_description"] = assessment.Describe(conv.MBTIResult)
		resp["mbti_reasoning"] = assessment.Reasoning(result.State)
	}

	writeJSON(w, resp)
}

// Session restores (or starts) the session's conversation for the UI.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := h.Sessions.Ensure(w, r)

	conv, err := h.Store.LatestBySession(ctx, sid)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if conv == nil {
		conv, err = h.Store.Create(ctx, sid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
	}

	msgs, err := h.Store.Messages(ctx, conv.ID, 0)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if msgs == nil {
		msgs = []store.Message{}
	}

	resp := map[string]any{
		"assessment_state":    conv.State,
		"assessment_complete": conv.IsComplete,
		"message_count":       conv.MessageCount,
		"min_messages_needed": h.MinTurns,
		"progress_percentage": progress(conv.MessageCount, h.MinTurns),
		"messages":            msgs,
	}
	if conv.IsComplete && conv.MBTIResult != "" {
		resp["mbti_type"] = conv.MBTIResult
		resp["mbti_description"] = assessment.Describe(conv.MBTIResult)
		resp["mbti_reasoning"] = assessment.Reasoning(conv.State)
	}

	writeJSON(w, resp)
}

// Reset keeps the session id but starts a brand-new conversation with
// a zeroed assessment. The old rows stay untouched.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := h.Sessions.Ensure(w, r)

	old, err := h.Store.LatestBySession(ctx, sid)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if _, err := h.Store.Create(ctx, sid); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if old != nil {
		if err := h.Cache.Clear(ctx, old.ID); err != nil {
			log.Printf("cache clear: %v", err)
		}
	}

	writeJSON(w, map[string]any{
		"status":  "success",
		"message": "Conversation has been reset.",
	})
}

// history returns the prompt context for a turn, preferring the Redis
// tail and falling back to Postgres on a miss.
func (h *Handler) history(r *http.Request, convID int) []Message {
	ctx := r.Context()

	cached, err := h.Cache.Recent(ctx, convID, promptWindow)
	if err != nil {
		log.Printf("history cache read: %v", err)
	}
	if len(cached) > 0 {
		return toChatMessages(cached)
	}

	stored, err := h.Store.Messages(ctx, convID, promptWindow)
	if err != nil {
		log.Printf("history db read: %v", err)
		return nil
	}
	return toChatMessages(stored)
}

func toChatMessages(msgs []store.Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, Message{Role: m.Role, Content: m.Content})
	}
	return out
}

func progress(turnCount, minTurns int) int {
	p := turnCount * 100 / minTurns
	if p > 100 {
		p = 100
	}
	return p
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}
