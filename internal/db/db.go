package db

import (
	"database/sql"

	_ "github.com/lib/pq"
)

func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Init creates the tables on startup. Idempotent.
func Init(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS conversations (
			id SERIAL PRIMARY KEY,
			session_id VARCHAR(64) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			last_updated TIMESTAMPTZ NOT NULL DEFAULT now(),
			assessment_state JSONB NOT NULL DEFAULT '{}',
			is_complete BOOLEAN NOT NULL DEFAULT FALSE,
			message_count INT NOT NULL DEFAULT 0,
			last_focus_dimension VARCHAR(10),
			mbti_result VARCHAR(4)
		);

		CREATE INDEX IF NOT EXISTS idx_conversations_session
			ON conversations (session_id);

		CREATE TABLE IF NOT EXISTS messages (
			id SERIAL PRIMARY KEY,
			conversation_id INT NOT NULL REFERENCES conversations(id),
			role VARCHAR(20) NOT NULL,
			content TEXT NOT NULL,
			dimension_scores JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS question_logs (
			id SERIAL PRIMARY KEY,
			conversation_id INT NOT NULL REFERENCES conversations(id),
			question TEXT NOT NULL,
			dimension VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}
