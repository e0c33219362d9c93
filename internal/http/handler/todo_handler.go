package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	domain "github.com/andsonalex-dev/todo-api/internal/domain/model"
	"github.com/andsonalex-dev/todo-api/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

type TodoResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

type StatusFilterResponse struct {
	Status string         `json:"status"`
	Count  int            `json:"count"`
	Todos  []TodoResponse `json:"todos"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ErrorResponse struct {
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	todo, err := h.svc.Create(r.Context(), req.Title, req.Description, req.Done)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(todo))
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	orderBy := r.URL.Query().Get("order_by")
	direction := r.URL.Query().Get("order_direction")

	todos, err := h.svc.List(r.Context(), orderBy, direction)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponses(todos))
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	todo, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(todo))
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	todo, err := h.svc.Update(r.Context(), id, req.Title, req.Description, req.Done)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(todo))
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "todo removed"})
}

func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	todo, err := h.svc.Toggle(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(todo))
}

func (h *TodoHandler) FilterByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.PathValue("status")

	todos, err := h.svc.FilterByStatus(r.Context(), status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusFilterResponse{
		Status: status,
		Count:  len(todos),
		Todos:  toResponses(todos),
	})
}

// decodeBody reads a create/update payload, checks it against the payload
// schema, and binds it. Malformed JSON is 400; a well-formed document with
// the wrong shape is 422.
func (h *TodoHandler) decodeBody(w http.ResponseWriter, r *http.Request) (*CreateTodoRequest, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read body")
		return nil, false
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return nil, false
	}

	if err := domain.ValidateCreatePayload(doc); err != nil {
		writeServiceError(w, err)
		return nil, false
	}

	var req CreateTodoRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return nil, false
	}
	return &req, true
}

// idFromPath parses the {id} path segment. Non-integer ids name no
// resource, so they read as not found.
func idFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		writeError(w, http.StatusNotFound, "todo not found")
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make([]FieldError, 0, len(verrs))
		for _, ve := range verrs {
			fields = append(fields, FieldError{Field: ve.Field, Reason: ve.Reason})
		}
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Detail: "validation failed",
			Errors: fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "todo not found")
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidSortField),
		errors.Is(err, domain.ErrInvalidSortDirection):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func toResponse(todo *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Done:        todo.Done,
	}
}

func toResponses(todos []*domain.Todo) []TodoResponse {
	resp := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		resp = append(resp, toResponse(todo))
	}
	return resp
}
