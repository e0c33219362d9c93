package repository

import (
	"context"

	domain "github.com/andsonalex-dev/todo-api/internal/domain/model"
)

type TodoRepository interface {
	Insert(ctx context.Context, fields *domain.TodoCreate) (*domain.Todo, error)
	GetByID(ctx context.Context, id int) (*domain.Todo, error)
	List(ctx context.Context) ([]*domain.Todo, error)
	Replace(ctx context.Context, id int, fields *domain.TodoCreate) (*domain.Todo, error)
	Delete(ctx context.Context, id int) error
	FilterByDone(ctx context.Context, done bool) ([]*domain.Todo, error)
}
