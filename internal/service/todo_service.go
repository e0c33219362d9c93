package service

import (
	"context"
	"sort"

	domain "github.com/andsonalex-dev/todo-api/internal/domain/model"
	"github.com/andsonalex-dev/todo-api/internal/repository"
)

// Status filter literals.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// TodoService validates payloads and orchestrates repository calls. Every
// failure it returns is caller-input-driven: ErrNotFound, ValidationErrors,
// or one of the invalid-argument sentinels.
type TodoService struct {
	repo repository.TodoRepository
}

func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, title, description string, done bool) (*domain.Todo, error) {
	fields, err := domain.NewTodoCreate(title, description, done)
	if err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, fields)
}

// List returns all todos in store order. A non-empty orderBy sorts a copy
// by id, title, description or done; direction defaults to ascending.
func (s *TodoService) List(ctx context.Context, orderBy, direction string) ([]*domain.Todo, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if orderBy == "" {
		return todos, nil
	}

	var less func(a, b *domain.Todo) bool
	switch orderBy {
	case "id":
		less = func(a, b *domain.Todo) bool { return a.ID < b.ID }
	case "title":
		less = func(a, b *domain.Todo) bool { return a.Title < b.Title }
	case "description":
		less = func(a, b *domain.Todo) bool { return a.Description < b.Description }
	case "done":
		less = func(a, b *domain.Todo) bool { return !a.Done && b.Done }
	default:
		return nil, domain.ErrInvalidSortField
	}

	switch direction {
	case "", "asc":
	case "desc":
		asc := less
		less = func(a, b *domain.Todo) bool { return asc(b, a) }
	default:
		return nil, domain.ErrInvalidSortDirection
	}

	sort.SliceStable(todos, func(i, j int) bool { return less(todos[i], todos[j]) })
	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, id int) (*domain.Todo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TodoService) Update(ctx context.Context, id int, title, description string, done bool) (*domain.Todo, error) {
	fields, err := domain.NewTodoCreate(title, description, done)
	if err != nil {
		return nil, err
	}
	return s.repo.Replace(ctx, id, fields)
}

func (s *TodoService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Toggle flips the done flag and leaves every other field unchanged.
func (s *TodoService) Toggle(ctx context.Context, id int) (*domain.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.repo.Replace(ctx, id, &domain.TodoCreate{
		Title:       todo.Title,
		Description: todo.Description,
		Done:        !todo.Done,
	})
}

func (s *TodoService) FilterByStatus(ctx context.Context, status string) ([]*domain.Todo, error) {
	switch status {
	case StatusCompleted:
		return s.repo.FilterByDone(ctx, true)
	case StatusPending:
		return s.repo.FilterByDone(ctx, false)
	default:
		return nil, domain.ErrInvalidStatus
	}
}
