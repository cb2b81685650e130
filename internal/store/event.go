package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out the global sequence shared by attempt and
// session events, so the two tables can be merged back into one timeline.
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(attemptEventsTable).
		Columns("sequence", "timestamp", "session_id", "student_id", "lesson_id",
			"word_index", "word", "transcript", "correct", "similarity").
		Values(seq, time.Now().UTC(), data.SessionID, data.StudentID, data.LessonID,
			data.WordIndex, data.Word, data.Transcript, data.Correct, data.Similarity).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionEventsTable).
		Columns("sequence", "timestamp", "session_id", "student_id", "lesson_id",
			"action", "score", "words", "duration_secs").
		Values(seq, time.Now().UTC(), data.SessionID, data.StudentID, data.LessonID,
			data.Action, data.Score, data.Words, data.DurationSecs).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, sessionID string, opts QueryOpts) ([]AttemptEvent, error) {
	b := entsql.Dialect(dialect.SQLite)
	preds := []*entsql.Predicate{entsql.EQ("session_id", sessionID)}
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UTC()))
	}

	sel := b.Select("sequence", "timestamp", "session_id", "student_id", "lesson_id",
		"word_index", "word", "transcript", "correct", "similarity").
		From(b.Table(attemptEventsTable)).
		Where(entsql.And(preds...)).
		OrderBy("sequence")
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptEvent
	for rows.Next() {
		var ev AttemptEvent
		if err := rows.Scan(&ev.Sequence, &ev.Timestamp, &ev.SessionID, &ev.StudentID,
			&ev.LessonID, &ev.WordIndex, &ev.Word, &ev.Transcript, &ev.Correct,
			&ev.Similarity); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
