package service

import (
	"context"
	"errors"
	"testing"

	domain "github.com/andsonalex-dev/todo-api/internal/domain/model"
	"github.com/andsonalex-dev/todo-api/internal/repository/memory"
)

func newService() *TodoService {
	return NewTodoService(memory.NewTodoRepository())
}

func mustCreate(t *testing.T, svc *TodoService, title string, done bool) *domain.Todo {
	t.Helper()
	todo, err := svc.Create(context.Background(), title, "desc", done)
	if err != nil {
		t.Fatalf("Create(%q): %v", title, err)
	}
	return todo
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, "  Buy milk ", "2 liters", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != "Buy milk" {
		t.Errorf("Title stored untrimmed: %q", created.Title)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got != *created {
		t.Errorf("Get: got %+v, want %+v", got, created)
	}
}

func TestCreateRejectsInvalidPayloadBeforeStore(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.Create(ctx, "   ", "desc", false); err == nil {
		t.Fatal("Create with blank title should fail")
	}

	todos, err := svc.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("rejected payload reached the store: %v", todos)
	}
}

func TestToggleIsInvolution(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created := mustCreate(t, svc, "task", false)

	once, err := svc.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !once.Done {
		t.Error("first toggle: Done should be true")
	}

	twice, err := svc.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if *twice != *created {
		t.Errorf("double toggle changed the item: got %+v, want %+v", twice, created)
	}
}

func TestToggleNotFound(t *testing.T) {
	svc := newService()
	if _, err := svc.Toggle(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Toggle(42): got %v, want ErrNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created := mustCreate(t, svc, "before", false)

	updated, err := svc.Update(ctx, created.ID, " after ", "new desc", true)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != created.ID || updated.Title != "after" || !updated.Done {
		t.Errorf("Update: got %+v", updated)
	}

	if _, err := svc.Update(ctx, 42, "t", "d", false); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update(42): got %v, want ErrNotFound", err)
	}
	if _, err := svc.Update(ctx, created.ID, "", "d", false); err == nil {
		t.Error("Update with blank title should fail")
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created := mustCreate(t, svc, "task", false)
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get after delete: got %v, want ErrNotFound", err)
	}
}

func TestFilterByStatus(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	mustCreate(t, svc, "open", false)
	closed := mustCreate(t, svc, "closed", true)

	completed, err := svc.FilterByStatus(ctx, StatusCompleted)
	if err != nil {
		t.Fatalf("FilterByStatus: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != closed.ID {
		t.Errorf("completed: got %v", completed)
	}

	pending, err := svc.FilterByStatus(ctx, StatusPending)
	if err != nil {
		t.Fatalf("FilterByStatus: %v", err)
	}
	if len(pending) != 1 || pending[0].Done {
		t.Errorf("pending: got %v", pending)
	}

	if _, err := svc.FilterByStatus(ctx, "finished"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("FilterByStatus(finished): got %v, want ErrInvalidStatus", err)
	}
}

func TestListSorting(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	mustCreate(t, svc, "banana", true)
	mustCreate(t, svc, "apple", false)
	mustCreate(t, svc, "cherry", false)

	tests := []struct {
		name      string
		orderBy   string
		direction string
		want      []string
	}{
		{"default keeps store order", "", "", []string{"banana", "apple", "cherry"}},
		{"title asc", "title", "asc", []string{"apple", "banana", "cherry"}},
		{"title desc", "title", "desc", []string{"cherry", "banana", "apple"}},
		{"id desc", "id", "desc", []string{"cherry", "apple", "banana"}},
		{"done asc is stable", "done", "asc", []string{"apple", "cherry", "banana"}},
		{"direction defaults to asc", "title", "", []string{"apple", "banana", "cherry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos, err := svc.List(ctx, tt.orderBy, tt.direction)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			for i, want := range tt.want {
				if todos[i].Title != want {
					t.Fatalf("position %d: got %q, want %q", i, todos[i].Title, want)
				}
			}
		})
	}
}

func TestListSortingDoesNotReorderStore(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	mustCreate(t, svc, "banana", false)
	mustCreate(t, svc, "apple", false)

	if _, err := svc.List(ctx, "title", "asc"); err != nil {
		t.Fatalf("List: %v", err)
	}

	todos, err := svc.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if todos[0].Title != "banana" {
		t.Errorf("sorting mutated store order: %q first", todos[0].Title)
	}
}

func TestListInvalidSortParams(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.List(ctx, "priority", ""); !errors.Is(err, domain.ErrInvalidSortField) {
		t.Errorf("order_by=priority: got %v, want ErrInvalidSortField", err)
	}
	if _, err := svc.List(ctx, "title", "down"); !errors.Is(err, domain.ErrInvalidSortDirection) {
		t.Errorf("order_direction=down: got %v, want ErrInvalidSortDirection", err)
	}
}
