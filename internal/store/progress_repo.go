package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type progressRepo struct {
	db *sql.DB
}

var progressColumns = []string{
	"student_id", "lesson_id", "score", "pronunciation_score",
	"completed", "completed_at", "updated_at",
}

func (r *progressRepo) Upsert(ctx context.Context, rec ProgressRecord) error {
	if rec.StudentID == "" || rec.LessonID == "" {
		return fmt.Errorf("upsert progress: student and lesson ids are required")
	}

	var completedAt any
	if !rec.CompletedAt.IsZero() {
		completedAt = rec.CompletedAt.UTC()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(progressTable).
		Columns(progressColumns...).
		Values(rec.StudentID, rec.LessonID, clampPercent(rec.Score),
			clampPercent(rec.PronunciationScore), rec.Completed, completedAt,
			time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("student_id", "lesson_id"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert progress %s/%s: %w", rec.StudentID, rec.LessonID, err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, studentID, lessonID string) (*ProgressRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(progressColumns...).
		From(b.Table(progressTable)).
		Where(entsql.And(
			entsql.EQ("student_id", studentID),
			entsql.EQ("lesson_id", lessonID),
		)).
		Query()

	rec, err := scanProgress(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("progress %s/%s: %w", studentID, lessonID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return rec, nil
}

func (r *progressRepo) ListForStudent(ctx context.Context, studentID string) ([]ProgressRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(progressColumns...).
		From(b.Table(progressTable)).
		Where(entsql.EQ("student_id", studentID)).
		OrderBy("lesson_id").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var out []ProgressRecord
	for rows.Next() {
		rec, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *progressRepo) Summaries(ctx context.Context) ([]ProgressSummary, error) {
	students, err := (&studentRepo{db: r.db}).listByRole(ctx, RoleStudent)
	if err != nil {
		return nil, err
	}

	out := make([]ProgressSummary, 0, len(students))
	for _, st := range students {
		recs, err := r.ListForStudent(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, summarize(st, recs))
	}
	return out, nil
}

// summarize aggregates completed records. Average is over completed lessons.
func summarize(st Student, recs []ProgressRecord) ProgressSummary {
	sum := ProgressSummary{Student: st}
	total := 0
	for _, rec := range recs {
		if !rec.Completed {
			continue
		}
		sum.LessonsCompleted++
		total += rec.Score
		if rec.CompletedAt.After(sum.LastActivity) {
			sum.LastActivity = rec.CompletedAt
		}
	}
	if sum.LessonsCompleted > 0 {
		sum.AverageScore = float64(total) / float64(sum.LessonsCompleted)
	}
	return sum
}

func scanProgress(row rowScanner) (*ProgressRecord, error) {
	var (
		rec         ProgressRecord
		completedAt sql.NullTime
	)
	if err := row.Scan(&rec.StudentID, &rec.LessonID, &rec.Score, &rec.PronunciationScore,
		&rec.Completed, &completedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		rec.CompletedAt = completedAt.Time
	}
	return &rec, nil
}

func clampPercent(v int) int {
	return max(0, min(100, v))
}
