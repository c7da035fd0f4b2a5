package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AttemptKind distinguishes the session types recorded in the attempt log.
type AttemptKind string

const (
	AttemptQuiz       AttemptKind = "quiz"
	AttemptBossBattle AttemptKind = "boss_battle"
	AttemptDiagnostic AttemptKind = "diagnostic"
	AttemptPractice   AttemptKind = "practice"
)

// Attempt is one finished session in the append-only attempt log.
type Attempt struct {
	ID        int64
	Username  string
	SessionID string
	Kind      AttemptKind
	Subject   string
	Level     int
	Score     int
	Total     int
	Passed    bool
	CreatedAt time.Time
}

// AttemptRepo provides append and query access to the attempt log.
type AttemptRepo interface {
	// Append records a finished session.
	Append(ctx context.Context, a Attempt) error

	// Recent returns the newest attempts for a learner, newest first.
	Recent(ctx context.Context, username string, limit int) ([]Attempt, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, a Attempt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (username, session_id, kind, subject, level, score, total, passed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Username, a.SessionID, string(a.Kind), a.Subject, a.Level, a.Score, a.Total, boolToInt(a.Passed),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, username string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, session_id, kind, subject, level, score, total, passed, created_at
		 FROM attempts WHERE username = ? ORDER BY id DESC LIMIT ?`,
		username, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var kind string
		var passed int
		if err := rows.Scan(&a.ID, &a.Username, &a.SessionID, &kind, &a.Subject, &a.Level, &a.Score, &a.Total, &passed, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Kind = AttemptKind(kind)
		a.Passed = passed != 0
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
