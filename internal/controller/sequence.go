package controller

import (
	"context"

	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/sandeepkv93/todocal/internal/state"
)

// The helpers below run a whole action against st in one call, for
// callers that own st on the current goroutine (the CLI).

func (c *Controller) Refresh(ctx context.Context, st *state.State) error {
	return c.LoadAll(ctx).Apply(st)
}

func (c *Controller) CreateTodo(ctx context.Context, st *state.State, draft model.TodoDraft) (model.Todo, error) {
	out := c.AddTodo(ctx, draft)
	return out.Todo, out.Apply(st)
}

func (c *Controller) CreateEvent(ctx context.Context, st *state.State, draft model.EventDraft) (model.Event, error) {
	out := c.AddEvent(ctx, draft)
	return out.Event, out.Apply(st)
}

// Toggle fails with state.ErrNotFound, without a request, when id is not
// cached.
func (c *Controller) Toggle(ctx context.Context, st *state.State, id int64) error {
	if _, err := st.FindTodo(id); err != nil {
		return err
	}
	return c.ToggleTodo(ctx, id).Apply(st)
}

// DeleteTodo asks confirm first; a declined prompt returns ErrDeclined and
// sends nothing.
func (c *Controller) DeleteTodo(ctx context.Context, st *state.State, id int64, prompt string, confirm Confirmer) error {
	if _, err := st.FindTodo(id); err != nil {
		return err
	}
	if confirm == nil || !confirm.Confirm(prompt) {
		return ErrDeclined
	}
	return c.RemoveTodo(ctx, id).Apply(st)
}

func (c *Controller) DeleteEvent(ctx context.Context, st *state.State, id int64, prompt string, confirm Confirmer) error {
	if _, err := st.FindEvent(id); err != nil {
		return err
	}
	if confirm == nil || !confirm.Confirm(prompt) {
		return ErrDeclined
	}
	return c.RemoveEvent(ctx, id).Apply(st)
}
