package http

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/andsonalex-dev/todo-api/internal/http/handler"
	"github.com/andsonalex-dev/todo-api/internal/http/middleware"
)

func NewRouter(todoHandler *handler.TodoHandler, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// /todos (create, list)
	mux.HandleFunc("POST /todos", todoHandler.Create)
	mux.HandleFunc("GET /todos", todoHandler.List)

	// /todos/{id} (get, update, delete, toggle)
	mux.HandleFunc("GET /todos/{id}", todoHandler.Get)
	mux.HandleFunc("PUT /todos/{id}", todoHandler.Update)
	mux.HandleFunc("DELETE /todos/{id}", todoHandler.Delete)
	mux.HandleFunc("PATCH /todos/{id}/toggle", todoHandler.Toggle)

	// /todos/status/{status} (filter by completion)
	mux.HandleFunc("GET /todos/status/{status}", todoHandler.FilterByStatus)

	return middleware.RequestID(middleware.AccessLog(logger)(mux))
}
