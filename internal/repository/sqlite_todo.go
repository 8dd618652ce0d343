package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/workbrief/internal/db"
	"github.com/alexanderramin/workbrief/internal/domain"
)

// SQLiteTodoRepo implements TodoRepo using a SQLite database.
type SQLiteTodoRepo struct {
	db db.DBTX
}

// NewSQLiteTodoRepo creates a new SQLiteTodoRepo.
func NewSQLiteTodoRepo(conn db.DBTX) *SQLiteTodoRepo {
	return &SQLiteTodoRepo{db: conn}
}

const todoColumns = `id, text, done, created_at, updated_at`

func (r *SQLiteTodoRepo) Create(ctx context.Context, t *domain.TodoItem) error {
	created := formatTimestamp(t.CreatedAt)
	updated := created
	if !t.UpdatedAt.IsZero() {
		updated = formatTimestamp(t.UpdatedAt)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO todo_items (text, done, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		t.Text, boolToInt(t.Done), created, updated)
	if err != nil {
		return fmt.Errorf("inserting todo item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading todo item id: %w", err)
	}
	t.ID = id
	return nil
}

func (r *SQLiteTodoRepo) Get(ctx context.Context, id int64) (*domain.TodoItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+todoColumns+` FROM todo_items WHERE id = ?`, id)
	t, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("todo item %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// List returns open items first, each group in creation order.
func (r *SQLiteTodoRepo) List(ctx context.Context) ([]*domain.TodoItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+todoColumns+` FROM todo_items ORDER BY done, id`)
	if err != nil {
		return nil, fmt.Errorf("listing todo items: %w", err)
	}
	defer rows.Close()

	var out []*domain.TodoItem
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SQLiteTodoRepo) Update(ctx context.Context, t *domain.TodoItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todo_items SET text = ?, done = ?, updated_at = ? WHERE id = ?`,
		t.Text, boolToInt(t.Done), formatTimestamp(t.UpdatedAt), t.ID)
	if err != nil {
		return fmt.Errorf("updating todo item %d: %w", t.ID, err)
	}
	return affectedOrNotFound(res, fmt.Sprintf("todo item %d", t.ID))
}

func (r *SQLiteTodoRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todo_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting todo item %d: %w", id, err)
	}
	return affectedOrNotFound(res, fmt.Sprintf("todo item %d", id))
}

func scanTodo(s scanner) (*domain.TodoItem, error) {
	var (
		t                  domain.TodoItem
		done               int
		createdAt, updated sql.NullString
	)
	if err := s.Scan(&t.ID, &t.Text, &done, &createdAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning todo item: %w", err)
	}
	t.Done = intToBool(done)
	t.CreatedAt = parseTimestamp(createdAt)
	t.UpdatedAt = parseTimestamp(updated)
	return &t, nil
}
