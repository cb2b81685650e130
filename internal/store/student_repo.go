package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Avatars are the glyphs a student can pick from.
var Avatars = []string{"🦁", "🐯", "🐼", "🦊", "🐸", "🦄", "🐻", "🐰"}

type studentRepo struct {
	db *sql.DB
}

var studentColumns = []string{"id", "full_name", "avatar_url", "role", "created_at"}

func (r *studentRepo) Ensure(ctx context.Context, fullName string) (*Student, error) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return nil, fmt.Errorf("ensure student: name is required")
	}

	st, err := r.byName(ctx, name)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	st = &Student{
		ID:        uuid.New().String(),
		FullName:  name,
		AvatarURL: Avatars[0],
		Role:      RoleStudent,
		CreatedAt: time.Now().UTC(),
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(studentsTable).
		Columns(studentColumns...).
		Values(st.ID, st.FullName, st.AvatarURL, st.Role, st.CreatedAt).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("create student %q: %w", name, err)
	}
	return st, nil
}

func (r *studentRepo) Get(ctx context.Context, id string) (*Student, error) {
	return r.one(ctx, entsql.EQ("id", id), id)
}

func (r *studentRepo) byName(ctx context.Context, name string) (*Student, error) {
	return r.one(ctx, entsql.EQ("full_name", name), name)
}

func (r *studentRepo) one(ctx context.Context, pred *entsql.Predicate, key string) (*Student, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(studentColumns...).
		From(b.Table(studentsTable)).
		Where(pred).
		Query()

	st, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("student %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get student %q: %w", key, err)
	}
	return st, nil
}

func (r *studentRepo) SetAvatar(ctx context.Context, id, avatar string) error {
	return r.set(ctx, id, "avatar_url", avatar)
}

func (r *studentRepo) SetRole(ctx context.Context, id, role string) error {
	if role != RoleStudent && role != RoleTeacher {
		return fmt.Errorf("unknown role %q", role)
	}
	return r.set(ctx, id, "role", role)
}

func (r *studentRepo) set(ctx context.Context, id, column, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Update(studentsTable).
		Set(column, value).
		Where(entsql.EQ("id", id)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update student %s: %w", column, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("student %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *studentRepo) List(ctx context.Context) ([]Student, error) {
	return r.listByRole(ctx, "")
}

func (r *studentRepo) listByRole(ctx context.Context, role string) ([]Student, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(studentColumns...).
		From(b.Table(studentsTable)).
		OrderBy("full_name")
	if role != "" {
		sel.Where(entsql.EQ("role", role))
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var out []Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		out = append(out, *st)
	}
	return out, rows.Err()
}

func scanStudent(row rowScanner) (*Student, error) {
	var st Student
	if err := row.Scan(&st.ID, &st.FullName, &st.AvatarURL, &st.Role, &st.CreatedAt); err != nil {
		return nil, err
	}
	return &st, nil
}
