package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Minggyul/mbti-chat/internal/assessment"
)

// Conversation mirrors one row of the conversations table.
type Conversation struct {
	ID           int
	SessionID    string
	State        assessment.State
	IsComplete   bool
	MessageCount int
	LastFocus    assessment.Dimension
	MBTIResult   string
}

// Message is one stored conversation entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationStore is the Postgres persistence layer. It owns the rows;
// the engine itself never touches storage.
type ConversationStore struct {
	DB *sql.DB
}

func NewConversationStore(db *sql.DB) *ConversationStore {
	return &ConversationStore{DB: db}
}

// Create starts a brand-new conversation for a session with a zeroed
// assessment state. Reset relies on this: old rows are never reused.
func (s *ConversationStore) Create(ctx context.Context, sessionID string) (*Conversation, error) {
	conv := &Conversation{
		SessionID: sessionID,
		State:     assessment.NewState(),
	}

	stateJSON, err := json.Marshal(conv.State)
	if err != nil {
		return nil, err
	}

	err = s.DB.QueryRowContext(ctx, `
		INSERT INTO conversations (session_id, assessment_state)
		VALUES ($1, $2)
		RETURNING id
	`, sessionID, stateJSON).Scan(&conv.ID)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	return conv, nil
}

// LatestBySession returns the newest conversation for a session, or
// nil when the session has none yet.
func (s *ConversationStore) LatestBySession(ctx context.Context, sessionID string) (*Conversation, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, session_id, assessment_state, is_complete, message_count,
		       last_focus_dimension, mbti_result
		FROM conversations
		WHERE session_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, sessionID)

	var (
		conv      Conversation
		stateJSON []byte
		focus     sql.NullString
		result    sql.NullString
	)
	err := row.Scan(&conv.ID, &conv.SessionID, &stateJSON, &conv.IsComplete,
		&conv.MessageCount, &focus, &result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	if err := json.Unmarshal(stateJSON, &conv.State); err != nil {
		return nil, fmt.Errorf("decode assessment state: %w", err)
	}
	conv.LastFocus = assessment.Dimension(focus.String)
	conv.MBTIResult = result.String

	return &conv, nil
}

// SaveTurn writes the post-turn conversation row back.
func (s *ConversationStore) SaveTurn(ctx context.Context, conv *Conversation) error {
	stateJSON, err := json.Marshal(conv.State)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx, `
		UPDATE conversations
		SET assessment_state = $2,
		    is_complete = $3,
		    message_count = $4,
		    last_focus_dimension = $5,
		    mbti_result = $6,
		    last_updated = now()
		WHERE id = $1
	`, conv.ID, stateJSON, conv.IsComplete, conv.MessageCount,
		nullIfEmpty(string(conv.LastFocus)), nullIfEmpty(conv.MBTIResult))
	if err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}
	return nil
}

// AppendMessage stores one message. scores may be nil (assistant
// messages, or turns where analysis failed).
func (s *ConversationStore) AppendMessage(ctx context.Context, convID int, role, content string, scores assessment.Observations) error {
	var scoresJSON any
	if len(scores) > 0 {
		b, err := json.Marshal(scores)
		if err != nil {
			return err
		}
		scoresJSON = b
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO messages (conversation_id, role, content, dimension_scores)
		VALUES ($1, $2, $3, $4)
	`, convID, role, content, scoresJSON)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

// Messages returns a conversation's messages in order. A positive
// limit returns only the most recent ones.
func (s *ConversationStore) Messages(ctx context.Context, convID, limit int) ([]Message, error) {
	query := `
		SELECT role, content FROM messages
		WHERE conversation_id = $1
		ORDER BY id
	`
	args := []any{convID}
	if limit > 0 {
		query = `
			SELECT role, content FROM (
				SELECT id, role, content FROM messages
				WHERE conversation_id = $1
				ORDER BY id DESC
				LIMIT $2
			) recent
			ORDER BY id
		`
		args = append(args, limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.Role, &m.Content); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
