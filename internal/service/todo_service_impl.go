package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/workbrief/internal/db"
	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/repository"
)

type todoService struct {
	todos repository.TodoRepo
	uow   db.UnitOfWork
}

func NewTodoService(todos repository.TodoRepo, uow db.UnitOfWork) TodoService {
	return &todoService{todos: todos, uow: uow}
}

func (s *todoService) Create(ctx context.Context, text string) (*domain.TodoItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("text", "must not be empty")
	}
	now := time.Now().UTC()
	item := &domain.TodoItem{Text: text, CreatedAt: now, UpdatedAt: now}
	if err := s.todos.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *todoService) List(ctx context.Context) ([]*domain.TodoItem, error) {
	return s.todos.List(ctx)
}

func (s *todoService) Update(ctx context.Context, id int64, text *string, done *bool) (*domain.TodoItem, error) {
	if text == nil && done == nil {
		return nil, invalid("", "nothing to update: provide text or done")
	}

	var updated *domain.TodoItem
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTodos := repository.NewSQLiteTodoRepo(tx)

		item, err := txTodos.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := item.ApplyUpdate(text, done, time.Now().UTC()); err != nil {
			if errors.Is(err, domain.ErrEmptyTodoText) {
				return invalid("text", "must not be empty")
			}
			return err
		}
		if err := txTodos.Update(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *todoService) Delete(ctx context.Context, id int64) error {
	return s.todos.Delete(ctx, id)
}
