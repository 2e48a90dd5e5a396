// Package apitest provides an in-memory stand-in for the todo/calendar REST
// API, for tests of the client packages.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/sandeepkv93/todocal/internal/model"
)

const (
	ValidToken = "valid-token"
	Password   = "s3cret"
)

// Request is one call the server received.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	ContentType   string
	Body          map[string]any
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	user     model.User
	todos    []model.Todo
	events   []model.Event
	nextID   int64
	requests []Request
	fail     map[string]int
}

func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		user:   model.User{ID: 1, Email: "ada@example.com", Username: "ada", FirstName: "Ada", LastName: "Lovelace"},
		nextID: 100,
		fail:   make(map[string]int),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/profile/", s.authed(s.handleProfile))
	mux.HandleFunc("POST /api/auth/login/", s.handleLogin)
	mux.HandleFunc("POST /api/auth/register/", s.handleRegister)
	mux.HandleFunc("GET /api/todos/{$}", s.authed(s.handleListTodos))
	mux.HandleFunc("POST /api/todos/{$}", s.authed(s.handleCreateTodo))
	mux.HandleFunc("POST /api/todos/{id}/toggle/", s.authed(s.handleToggleTodo))
	mux.HandleFunc("DELETE /api/todos/{id}/", s.authed(s.handleDeleteTodo))
	mux.HandleFunc("GET /api/calendar/events/{$}", s.authed(s.handleListEvents))
	mux.HandleFunc("POST /api/calendar/events/{$}", s.authed(s.handleCreateEvent))
	mux.HandleFunc("DELETE /api/calendar/events/{id}/", s.authed(s.handleDeleteEvent))
	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the value to hand to api.NewClient.
func (s *Server) BaseURL() string { return s.URL + "/api" }

func (s *Server) SeedTodos(todos ...model.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = append(s.todos, todos...)
}

func (s *Server) SeedEvents(events ...model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

// FailNext makes the next call matching "METHOD /path/" answer with status.
func (s *Server) FailNext(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[method+" "+path] = status
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many calls matched method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) Todos() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := Request{
			Method:        r.Method,
			Path:          strings.TrimPrefix(r.URL.Path, "/api"),
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			ContentType:   r.Header.Get("Content-Type"),
		}
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				rec.Body = body
			}
		}
		s.mu.Lock()
		s.requests = append(s.requests, rec)
		status, failing := s.fail[rec.Method+" "+rec.Path]
		if failing {
			delete(s.fail, rec.Method+" "+rec.Path)
		}
		s.mu.Unlock()
		if failing {
			writeJSON(w, status, map[string]string{"detail": "forced failure"})
			return
		}
		r = r.WithContext(withBody(r.Context(), rec.Body))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+ValidToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"})
			return
		}
		next(w, r)
	}
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	if str(body, "email") != s.user.Email || str(body, "password") != Password {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"non_field_errors": []string{"Invalid credentials."}})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"access": ValidToken, "refresh": "refresh-token", "user": s.user})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	if str(body, "email") == s.user.Email {
		writeJSON(w, http.StatusBadRequest, map[string]any{"email": []string{"user with this email already exists."}})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "created", "access": ValidToken, "refresh": "refresh-token"})
}

func (s *Server) handleListTodos(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.todos
	if out == nil {
		out = []model.Todo{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	title := str(body, "title")
	if strings.TrimSpace(title) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"title": []string{"This field may not be blank."}})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	todo := model.Todo{
		ID:          s.nextID,
		Title:       title,
		Description: str(body, "description"),
		Priority:    model.Priority(str(body, "priority")),
		IsImportant: body["is_important"] == true,
	}
	if due := str(body, "due_date"); due != "" {
		if parsed, err := model.ParseTime(due, nil); err == nil {
			todo.DueDate = &parsed
		}
	}
	s.todos = append(s.todos, todo)
	writeJSON(w, http.StatusCreated, todo)
}

func (s *Server) handleToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].IsCompleted = !s.todos[i].IsCompleted
			writeJSON(w, http.StatusOK, s.todos[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Todo not found."})
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (s *Server) handleListEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.events
	if out == nil {
		out = []model.Event{}
	}
	// Paginated envelope, as the backend returns when pagination is on.
	writeJSON(w, http.StatusOK, map[string]any{"count": len(out), "results": out})
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	start, startErr := model.ParseTime(str(body, "start_time"), nil)
	end, endErr := model.ParseTime(str(body, "end_time"), nil)
	if startErr != nil || endErr != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"start_time": []string{"Datetime has wrong format."}})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	event := model.Event{
		ID:          s.nextID,
		Title:       str(body, "title"),
		Description: str(body, "description"),
		StartTime:   start,
		EndTime:     end,
		Location:    str(body, "location"),
	}
	s.events = append(s.events, event)
	writeJSON(w, http.StatusCreated, event)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func str(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}
