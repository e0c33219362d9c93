package memory

import (
	"context"
	"sync"

	domain "github.com/andsonalex-dev/todo-api/internal/domain/model"
)

// TodoRepository holds the working set of todos for the process lifetime.
// A single mutex serializes every operation; net/http serves requests
// concurrently and the store has no finer-grained coordination.
type TodoRepository struct {
	mu     sync.Mutex
	todos  map[int]*domain.Todo
	order  []int
	nextID int
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{
		todos:  make(map[int]*domain.Todo),
		nextID: 1,
	}
}

// Insert assigns the next id and stores the todo. Ids are never reused,
// even after deletions.
func (r *TodoRepository) Insert(ctx context.Context, fields *domain.TodoCreate) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo := &domain.Todo{
		ID:          r.nextID,
		Title:       fields.Title,
		Description: fields.Description,
		Done:        fields.Done,
	}
	r.nextID++

	r.todos[todo.ID] = todo
	r.order = append(r.order, todo.ID)

	return copyOf(todo), nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id int) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyOf(todo), nil
}

// List returns all todos in insertion order. The order slice survives
// deletions, so items created after a delete still come last.
func (r *TodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos := make([]*domain.Todo, 0, len(r.todos))
	for _, id := range r.order {
		todos = append(todos, copyOf(r.todos[id]))
	}
	return todos, nil
}

// Replace overwrites title, description and done for an existing id,
// keeping the id itself.
func (r *TodoRepository) Replace(ctx context.Context, id int, fields *domain.TodoCreate) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	todo.Title = fields.Title
	todo.Description = fields.Description
	todo.Done = fields.Done

	return copyOf(todo), nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.todos, id)

	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *TodoRepository) FilterByDone(ctx context.Context, done bool) ([]*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos := []*domain.Todo{}
	for _, id := range r.order {
		if todo := r.todos[id]; todo.Done == done {
			todos = append(todos, copyOf(todo))
		}
	}
	return todos, nil
}

// copyOf keeps stored instances private to the repository.
func copyOf(todo *domain.Todo) *domain.Todo {
	out := *todo
	return &out
}
