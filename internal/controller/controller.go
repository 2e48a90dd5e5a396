// Package controller runs the todo and event actions against the API. Each
// action is a request followed by an Outcome; state changes only when the
// Outcome is applied, which happens after the server answered.
package controller

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"github.com/sandeepkv93/todocal/internal/model"
)

// ErrDeclined is returned when the user did not confirm a delete.
var ErrDeclined = errors.New("controller: delete not confirmed")

type ResourceAPI interface {
	ListTodos(ctx context.Context) ([]model.Todo, error)
	CreateTodo(ctx context.Context, in model.TodoDraft) (model.Todo, error)
	ToggleTodo(ctx context.Context, id int64) error
	DeleteTodo(ctx context.Context, id int64) error
	ListEvents(ctx context.Context) ([]model.Event, error)
	CreateEvent(ctx context.Context, in model.EventDraft) (model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type Controller struct {
	api    ResourceAPI
	logger *log.Logger
}

func New(api ResourceAPI, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Controller{api: api, logger: logger}
}

func (c *Controller) LoadTodos(ctx context.Context) TodosLoaded {
	todos, err := c.api.ListTodos(ctx)
	if err != nil {
		c.logger.Printf("controller: load todos: %v", err)
	}
	return TodosLoaded{Todos: todos, Err: err}
}

func (c *Controller) LoadEvents(ctx context.Context) EventsLoaded {
	events, err := c.api.ListEvents(ctx)
	if err != nil {
		c.logger.Printf("controller: load events: %v", err)
	}
	return EventsLoaded{Events: events, Err: err}
}

// LoadAll issues both list loads together and waits for both.
func (c *Controller) LoadAll(ctx context.Context) AllLoaded {
	var out AllLoaded
	var wg sync.WaitGroup
	wg.Go(func() { out.Todos = c.LoadTodos(ctx) })
	wg.Go(func() { out.Events = c.LoadEvents(ctx) })
	wg.Wait()
	return out
}

// AddTodo validates draft locally before posting it.
func (c *Controller) AddTodo(ctx context.Context, draft model.TodoDraft) TodoAdded {
	if draft.Priority == "" {
		draft.Priority = model.PriorityMedium
	}
	if err := draft.Validate(); err != nil {
		return TodoAdded{Err: err}
	}
	todo, err := c.api.CreateTodo(ctx, draft)
	if err != nil {
		c.logger.Printf("controller: add todo: %v", err)
	}
	return TodoAdded{Todo: todo, Err: err}
}

func (c *Controller) AddEvent(ctx context.Context, draft model.EventDraft) EventAdded {
	if err := draft.Validate(); err != nil {
		return EventAdded{Err: err}
	}
	event, err := c.api.CreateEvent(ctx, draft)
	if err != nil {
		c.logger.Printf("controller: add event: %v", err)
	}
	return EventAdded{Event: event, Err: err}
}

// ToggleTodo asks the server to flip completion of id. Callers check that
// id is cached before calling.
func (c *Controller) ToggleTodo(ctx context.Context, id int64) TodoToggled {
	err := c.api.ToggleTodo(ctx, id)
	if err != nil {
		c.logger.Printf("controller: toggle todo %d: %v", id, err)
	}
	return TodoToggled{ID: id, Err: err}
}

func (c *Controller) RemoveTodo(ctx context.Context, id int64) TodoRemoved {
	err := c.api.DeleteTodo(ctx, id)
	if err != nil {
		c.logger.Printf("controller: delete todo %d: %v", id, err)
	}
	return TodoRemoved{ID: id, Err: err}
}

func (c *Controller) RemoveEvent(ctx context.Context, id int64) EventRemoved {
	err := c.api.DeleteEvent(ctx, id)
	if err != nil {
		c.logger.Printf("controller: delete event %d: %v", id, err)
	}
	return EventRemoved{ID: id, Err: err}
}
