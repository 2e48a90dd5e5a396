package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sandeepkv93/todocal/internal/api"
	"github.com/sandeepkv93/todocal/internal/api/apitest"
	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/sandeepkv93/todocal/internal/state"
)

func setup(t *testing.T) (*Controller, *apitest.Server, *state.State) {
	t.Helper()
	srv := apitest.NewServer(t)
	client := api.NewClient(srv.BaseURL())
	client.SetToken(apitest.ValidToken)
	st := state.New()
	st.SignIn(model.User{Email: "ada@example.com"})
	return New(client, nil), srv, st
}

func eventAt(id int64, title string, start time.Time) model.Event {
	return model.Event{ID: id, Title: title, StartTime: model.Time{Time: start}, EndTime: model.Time{Time: start.Add(time.Hour)}}
}

func TestRefreshLoadsBothListsAndStats(t *testing.T) {
	c, srv, st := setup(t)
	srv.SeedTodos(model.Todo{ID: 1, Title: "a", IsCompleted: true}, model.Todo{ID: 2, Title: "b"})
	srv.SeedEvents(eventAt(3, "standup", time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)))

	if err := c.Refresh(context.Background(), st); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(st.Todos) != 2 || len(st.Events) != 1 {
		t.Fatalf("unexpected lists: %d todos, %d events", len(st.Todos), len(st.Events))
	}
	want := state.Stats{TotalTodos: 2, CompletedTodos: 1, PendingTodos: 1, TotalEvents: 1}
	if st.Stats != want {
		t.Fatalf("stats = %+v, want %+v", st.Stats, want)
	}
	if srv.Count(http.MethodGet, "/todos/") != 1 || srv.Count(http.MethodGet, "/calendar/events/") != 1 {
		t.Fatalf("expected one load per list, got %+v", srv.Requests())
	}
}

func TestLoadAllFailedSideKeepsPreviousList(t *testing.T) {
	c, srv, st := setup(t)
	st.ReplaceEvents([]model.Event{{ID: 77, Title: "cached"}})
	srv.SeedTodos(model.Todo{ID: 1, Title: "fresh"})
	srv.FailNext(http.MethodGet, "/calendar/events/", http.StatusInternalServerError)

	err := c.Refresh(context.Background(), st)
	if err == nil {
		t.Fatal("expected the events error to be reported")
	}
	if len(st.Todos) != 1 || st.Todos[0].Title != "fresh" {
		t.Fatalf("todos should load independently: %+v", st.Todos)
	}
	if len(st.Events) != 1 || st.Events[0].ID != 77 {
		t.Fatalf("events should keep cached contents: %+v", st.Events)
	}
	if st.Stats.TotalTodos != 1 || st.Stats.TotalEvents != 1 {
		t.Fatalf("stats should be recomputed: %+v", st.Stats)
	}
}

func TestCreateTodoAppendsServerObject(t *testing.T) {
	c, _, st := setup(t)
	st.ReplaceTodos([]model.Todo{{ID: 1, Title: "existing", IsCompleted: true}})
	st.RecomputeStats()

	todo, err := c.CreateTodo(context.Background(), st, model.TodoDraft{Title: "new one", IsImportant: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	last := st.Todos[len(st.Todos)-1]
	if last.ID != todo.ID || last.Title != "new one" || last.Priority != model.PriorityMedium {
		t.Fatalf("expected server todo appended last, got %+v", last)
	}
	if st.Stats.PendingTodos != st.Stats.TotalTodos-st.Stats.CompletedTodos || st.Stats.TotalTodos != 2 {
		t.Fatalf("stats invariant broken: %+v", st.Stats)
	}
}

func TestCreateTodoValidationMakesNoCall(t *testing.T) {
	c, srv, st := setup(t)
	_, err := c.CreateTodo(context.Background(), st, model.TodoDraft{Title: " "})
	if !errors.Is(err, model.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if len(srv.Requests()) != 0 || len(st.Todos) != 0 {
		t.Fatal("validation failure must not call the server or change state")
	}
}

func TestCreateTodoServerRejectionLeavesState(t *testing.T) {
	c, srv, st := setup(t)
	srv.FailNext(http.MethodPost, "/todos/", http.StatusBadRequest)
	_, err := c.CreateTodo(context.Background(), st, model.TodoDraft{Title: "x"})
	if api.ServerDetail(err) != "forced failure" {
		t.Fatalf("expected server detail, got %v", err)
	}
	if len(st.Todos) != 0 {
		t.Fatalf("state must not change on failure: %+v", st.Todos)
	}
}

func TestToggleFlipsOnlyTarget(t *testing.T) {
	c, srv, st := setup(t)
	seed := []model.Todo{{ID: 1, Title: "a"}, {ID: 2, Title: "b", IsCompleted: true}}
	srv.SeedTodos(seed...)
	st.ReplaceTodos(seed)
	st.ReplaceEvents([]model.Event{{ID: 9}})

	if err := c.Toggle(context.Background(), st, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !st.Todos[0].IsCompleted || !st.Todos[1].IsCompleted {
		t.Fatalf("unexpected todos: %+v", st.Todos)
	}
	if len(st.Events) != 1 || st.Events[0].ID != 9 {
		t.Fatalf("events changed: %+v", st.Events)
	}
	if srv.Count(http.MethodPost, "/todos/1/toggle/") != 1 {
		t.Fatalf("expected toggle call, got %+v", srv.Requests())
	}
}

func TestToggleUnknownIDIsReportedWithoutCall(t *testing.T) {
	c, srv, st := setup(t)
	err := c.Toggle(context.Background(), st, 42)
	if !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("expected state.ErrNotFound, got %v", err)
	}
	if len(srv.Requests()) != 0 {
		t.Fatal("expected no request for unknown id")
	}
}

func TestToggleServerFailureKeepsFlag(t *testing.T) {
	c, srv, st := setup(t)
	st.ReplaceTodos([]model.Todo{{ID: 5, Title: "a"}})
	srv.FailNext(http.MethodPost, "/todos/5/toggle/", http.StatusNotFound)
	if err := c.Toggle(context.Background(), st, 5); err == nil {
		t.Fatal("expected error")
	}
	if st.Todos[0].IsCompleted {
		t.Fatal("flag must not flip without server confirmation")
	}
}

func TestDeleteEventDeclinedIsNoop(t *testing.T) {
	c, srv, st := setup(t)
	ev := eventAt(3, "review", time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC))
	srv.SeedEvents(ev)
	st.ReplaceEvents([]model.Event{ev})

	asked := ""
	err := c.DeleteEvent(context.Background(), st, 3, "delete review?", ConfirmFunc(func(p string) bool {
		asked = p
		return false
	}))
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	if asked != "delete review?" {
		t.Fatalf("expected prompt to be shown, got %q", asked)
	}
	if len(st.Events) != 1 || len(srv.Requests()) != 0 {
		t.Fatalf("declined delete must not change state or call server: %+v %+v", st.Events, srv.Requests())
	}
}

func TestDeleteConfirmed(t *testing.T) {
	c, srv, st := setup(t)
	ev := eventAt(3, "review", time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC))
	srv.SeedEvents(ev)
	srv.SeedTodos(model.Todo{ID: 8, Title: "t"})
	st.ReplaceEvents([]model.Event{ev})
	st.ReplaceTodos([]model.Todo{{ID: 8, Title: "t"}})
	yes := ConfirmFunc(func(string) bool { return true })

	if err := c.DeleteEvent(context.Background(), st, 3, "", yes); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if err := c.DeleteTodo(context.Background(), st, 8, "", yes); err != nil {
		t.Fatalf("delete todo: %v", err)
	}
	if len(st.Events) != 0 || len(st.Todos) != 0 {
		t.Fatalf("expected both removed: %+v %+v", st.Events, st.Todos)
	}
	if st.Stats != (state.Stats{}) {
		t.Fatalf("expected zero stats, got %+v", st.Stats)
	}
	if err := c.DeleteTodo(context.Background(), st, 8, "", yes); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("expected not found on repeat delete, got %v", err)
	}
}

func TestCreateEventRoundTrip(t *testing.T) {
	c, srv, st := setup(t)
	start := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)
	ev, err := c.CreateEvent(context.Background(), st, model.EventDraft{
		Title:     "Dentist",
		StartTime: model.Time{Time: start},
		EndTime:   model.Time{Time: start.Add(30 * time.Minute)},
		Location:  "Main St",
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if ev.ID == 0 || st.Events[0].Location != "Main St" || st.Stats.TotalEvents != 1 {
		t.Fatalf("unexpected event state: %+v %+v", ev, st.Stats)
	}
	body := srv.Requests()[0].Body
	if body["start_time"] != "2026-02-10T14:00:00Z" || body["end_time"] != "2026-02-10T14:30:00Z" {
		t.Fatalf("unexpected event body: %#v", body)
	}

	_, err = c.CreateEvent(context.Background(), st, model.EventDraft{Title: "bad", StartTime: model.Time{Time: start}})
	if !errors.Is(err, model.ErrEndRequired) {
		t.Fatalf("expected ErrEndRequired, got %v", err)
	}
}

func TestSingleListLoadUpdatesCounters(t *testing.T) {
	st := state.New()
	st.SignIn(model.User{Email: "ada@example.com"})

	if err := (TodosLoaded{Todos: []model.Todo{{ID: 1}, {ID: 2, IsCompleted: true}}}).Apply(st); err != nil {
		t.Fatalf("apply todos: %v", err)
	}
	if err := (EventsLoaded{Events: []model.Event{{ID: 3}}}).Apply(st); err != nil {
		t.Fatalf("apply events: %v", err)
	}
	want := state.Stats{TotalTodos: 2, CompletedTodos: 1, PendingTodos: 1, TotalEvents: 1}
	if st.Stats != want {
		t.Fatalf("stats = %+v, want %+v", st.Stats, want)
	}
}
