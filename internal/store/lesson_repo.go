package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/speakup/internal/lessons"
)

type lessonRepo struct {
	db *sql.DB
}

var lessonColumns = []string{
	"id", "title", "type", "difficulty", "description",
	"order_index", "is_active", "content",
}

func (r *lessonRepo) Get(ctx context.Context, id string) (*lessons.Lesson, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(lessonColumns...).
		From(b.Table(lessonsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	l, err := scanLesson(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lesson %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson %q: %w", id, err)
	}
	return l, nil
}

func (r *lessonRepo) ListActive(ctx context.Context) ([]lessons.Lesson, error) {
	return r.list(ctx, true)
}

func (r *lessonRepo) List(ctx context.Context) ([]lessons.Lesson, error) {
	return r.list(ctx, false)
}

func (r *lessonRepo) list(ctx context.Context, activeOnly bool) ([]lessons.Lesson, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(lessonColumns...).
		From(b.Table(lessonsTable)).
		OrderBy("order_index", "id")
	if activeOnly {
		sel.Where(entsql.EQ("is_active", true))
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var out []lessons.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func (r *lessonRepo) Upsert(ctx context.Context, l *lessons.Lesson) error {
	content, err := json.Marshal(l.Content)
	if err != nil {
		return fmt.Errorf("marshal lesson content: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(lessonsTable).
		Columns(append(lessonColumns, "updated_at")...).
		Values(l.ID, l.Title, l.Type, l.Difficulty, l.Description,
			l.OrderIndex, l.Active, string(content), time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert lesson %q: %w", l.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLesson(row rowScanner) (*lessons.Lesson, error) {
	var (
		l       lessons.Lesson
		content string
	)
	if err := row.Scan(&l.ID, &l.Title, &l.Type, &l.Difficulty, &l.Description,
		&l.OrderIndex, &l.Active, &content); err != nil {
		return nil, err
	}
	c, err := lessons.ParseContent([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("lesson %q: %w", l.ID, err)
	}
	l.Content = c
	return &l, nil
}
