package controller

import (
	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/sandeepkv93/todocal/internal/state"
)

// Outcome is the result of one network action. Apply performs the matching
// state transition when the action succeeded and returns the action error
// otherwise, leaving st untouched.
type Outcome interface {
	Apply(st *state.State) error
}

type TodosLoaded struct {
	Todos []model.Todo
	Err   error
}

func (o TodosLoaded) Apply(st *state.State) error {
	if o.Err != nil {
		return o.Err
	}
	st.ReplaceTodos(o.Todos)
	return nil
}

type EventsLoaded struct {
	Events []model.Event
	Err    error
}

func (o EventsLoaded) Apply(st *state.State) error {
	if o.Err != nil {
		return o.Err
	}
	st.ReplaceEvents(o.Events)
	return nil
}

// AllLoaded carries both list loads. Each side is applied on its own, so a
// failed side keeps its previous contents; counters are recomputed once
// both have reported.
type AllLoaded struct {
	Todos  TodosLoaded
	Events EventsLoaded
}

func (o AllLoaded) Apply(st *state.State) error {
	todoErr := o.Todos.Apply(st)
	eventErr := o.Events.Apply(st)
	st.RecomputeStats()
	if todoErr != nil {
		return todoErr
	}
	return eventErr
}

type TodoAdded struct {
	Todo model.Todo
	Err  error
}

func (o TodoAdded) Apply(st *state.State) error {
	if o.Err != nil {
		return o.Err
	}
	st.AppendTodo(o.Todo)
	return nil
}

type EventAdded struct {
	Event model.Event
	Err   error
}

func (o EventAdded) Apply(st *state.State) error {
	if o.Err != nil {
		return o.Err
	}
	st.AppendEvent(o.Event)
	return nil
}

type TodoToggled struct {
	ID  int64
	Err error
}

func (o TodoToggled) Apply(st *state.State) error {
	if o.Err != nil {
		return o.Err
	}
	return st.FlipTodo(o.ID)
}

type TodoRemoved struct {
	ID  int64
	Err error
}

func (o TodoRemoved) Apply(st *state.State) error {
	if o.Err != nil {
		return o.Err
	}
	return st.RemoveTodo(o.ID)
}

type EventRemoved struct {
	ID  int64
	Err error
}

func (o EventRemoved) Apply(st *state.State) error {
	if o.Err != nil {
		return o.Err
	}
	return st.RemoveEvent(o.ID)
}
