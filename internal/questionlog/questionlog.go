package questionlog

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/Minggyul/mbti-chat/internal/assessment"
)

// Extract pulls the last question sentence out of an assistant reply.
// Best-effort presentational heuristic: split on sentence periods and
// take the last piece containing a question mark. Returns "" when the
// reply asks nothing.
func Extract(response string) string {
	if !strings.Contains(response, "?") {
		return ""
	}

	sentences := strings.Split(response, ".")
	for i := len(sentences) - 1; i >= 0; i-- {
		if strings.Contains(sentences[i], "?") {
			return strings.TrimSpace(sentences[i])
		}
	}
	return ""
}

// Log records one asked question and the axis it was probing.
// Fire-and-forget: a failed insert is logged and never breaks the chat
// flow.
func Log(ctx context.Context, db *sql.DB, conversationID int, question string, dim assessment.Dimension) {
	if question == "" || dim == "" {
		return
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO question_logs (conversation_id, question, dimension)
		VALUES ($1, $2, $3)
	`, conversationID, question, string(dim))
	if err != nil {
		log.Printf("question log insert failed: %v", err)
	}
}
