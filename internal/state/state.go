// Package state is the client's in-memory application state. Lists are a
// cache of server state: callers apply a transition only after the server
// confirmed the matching request.
package state

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/todocal/internal/model"
)

var ErrNotFound = errors.New("state: item not in local list")

// NotFoundError names the missing item.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("state: %s %d not in local list", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type Phase string

const (
	PhaseLoggedOut Phase = "logged_out"
	PhaseDashboard Phase = "dashboard"
)

type Stats struct {
	TotalTodos     int
	CompletedTodos int
	PendingTodos   int
	TotalEvents    int
}

type State struct {
	Phase  Phase
	User   *model.User
	Todos  []model.Todo
	Events []model.Event
	Stats  Stats
}

func New() *State {
	return &State{Phase: PhaseLoggedOut}
}

// SignIn starts a session with empty lists; they fill once loaded.
func (s *State) SignIn(user model.User) {
	u := user
	s.User = &u
	s.Phase = PhaseDashboard
	s.Todos = nil
	s.Events = nil
	s.RecomputeStats()
}

// SignOut drops the user and both cached lists.
func (s *State) SignOut() {
	s.User = nil
	s.Phase = PhaseLoggedOut
	s.Todos = nil
	s.Events = nil
	s.RecomputeStats()
}

func (s *State) LoggedIn() bool {
	return s.Phase == PhaseDashboard
}

func (s *State) ReplaceTodos(todos []model.Todo) {
	s.Todos = append([]model.Todo(nil), todos...)
	s.RecomputeStats()
}

func (s *State) ReplaceEvents(events []model.Event) {
	s.Events = append([]model.Event(nil), events...)
	s.RecomputeStats()
}

func (s *State) AppendTodo(todo model.Todo) {
	s.Todos = append(s.Todos, todo)
	s.RecomputeStats()
}

func (s *State) AppendEvent(event model.Event) {
	s.Events = append(s.Events, event)
	s.RecomputeStats()
}

func (s *State) FindTodo(id int64) (model.Todo, error) {
	i := s.todoIndex(id)
	if i < 0 {
		return model.Todo{}, &NotFoundError{Kind: "todo", ID: id}
	}
	return s.Todos[i], nil
}

func (s *State) FindEvent(id int64) (model.Event, error) {
	i := s.eventIndex(id)
	if i < 0 {
		return model.Event{}, &NotFoundError{Kind: "event", ID: id}
	}
	return s.Events[i], nil
}

// FlipTodo inverts the local completion flag of todo id. The server's
// response to a toggle is not consulted.
func (s *State) FlipTodo(id int64) error {
	i := s.todoIndex(id)
	if i < 0 {
		return &NotFoundError{Kind: "todo", ID: id}
	}
	s.Todos[i].IsCompleted = !s.Todos[i].IsCompleted
	s.RecomputeStats()
	return nil
}

func (s *State) RemoveTodo(id int64) error {
	i := s.todoIndex(id)
	if i < 0 {
		return &NotFoundError{Kind: "todo", ID: id}
	}
	s.Todos = append(s.Todos[:i:i], s.Todos[i+1:]...)
	s.RecomputeStats()
	return nil
}

func (s *State) RemoveEvent(id int64) error {
	i := s.eventIndex(id)
	if i < 0 {
		return &NotFoundError{Kind: "event", ID: id}
	}
	s.Events = append(s.Events[:i:i], s.Events[i+1:]...)
	s.RecomputeStats()
	return nil
}

// RecomputeStats refreshes the aggregate counters from the lists.
func (s *State) RecomputeStats() {
	total := len(s.Todos)
	done := model.CountCompleted(s.Todos)
	s.Stats = Stats{
		TotalTodos:     total,
		CompletedTodos: done,
		PendingTodos:   total - done,
		TotalEvents:    len(s.Events),
	}
}

func (s *State) todoIndex(id int64) int {
	for i := range s.Todos {
		if s.Todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) eventIndex(id int64) int {
	for i := range s.Events {
		if s.Events[i].ID == id {
			return i
		}
	}
	return -1
}
