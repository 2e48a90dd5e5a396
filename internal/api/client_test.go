package api

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/todocal/internal/api/apitest"
	"github.com/sandeepkv93/todocal/internal/model"
)

func newTestClient(t *testing.T) (*Client, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(t)
	return NewClient(srv.BaseURL()), srv
}

func TestLoginThenAuthenticatedCalls(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()

	resp, err := client.Login(ctx, LoginRequest{Email: "ada@example.com", Password: apitest.Password})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Access != apitest.ValidToken || resp.User.FirstName != "Ada" {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	client.SetToken(resp.Access)
	user, err := client.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}

	reqs := srv.Requests()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].Authorization != "" {
		t.Fatalf("login must be sent without token, got %q", reqs[0].Authorization)
	}
	if reqs[1].Authorization != "Bearer "+apitest.ValidToken {
		t.Fatalf("expected bearer header, got %q", reqs[1].Authorization)
	}
	for _, r := range reqs {
		if r.ContentType != "application/json" {
			t.Fatalf("expected json content type, got %q", r.ContentType)
		}
		if r.RequestID == "" {
			t.Fatalf("expected request id on %s %s", r.Method, r.Path)
		}
	}
	if reqs[0].RequestID == reqs[1].RequestID {
		t.Fatal("expected distinct request ids")
	}
}

func TestLoginFailureCarriesServerDetail(t *testing.T) {
	client, _ := newTestClient(t)
	_, err := client.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "wrong"})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Detail != "Invalid credentials." {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if !IsUnauthorized(err) {
		t.Fatal("expected IsUnauthorized to be true")
	}
}

func TestProfileWithoutTokenIsUnauthorized(t *testing.T) {
	client, _ := newTestClient(t)
	_, err := client.Profile(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if ServerDetail(err) == "" {
		t.Fatal("expected server detail on 401")
	}
}

func TestTodoLifecycle(t *testing.T) {
	client, srv := newTestClient(t)
	client.SetToken(apitest.ValidToken)
	ctx := context.Background()

	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := client.CreateTodo(ctx, model.TodoDraft{
		Title:       "Buy milk",
		Priority:    model.PriorityHigh,
		DueDate:     model.NewTime(due),
		IsImportant: true,
	})
	if err != nil {
		t.Fatalf("create todo: %v", err)
	}
	if created.ID == 0 || created.Title != "Buy milk" || !created.IsImportant {
		t.Fatalf("unexpected created todo: %+v", created)
	}
	body := srv.Requests()[0].Body
	if body["due_date"] != "2026-03-01T00:00:00Z" || body["priority"] != "high" {
		t.Fatalf("unexpected create body: %#v", body)
	}

	if err := client.ToggleTodo(ctx, created.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	todos, err := client.ListTodos(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 1 || !todos[0].IsCompleted {
		t.Fatalf("unexpected todos after toggle: %+v", todos)
	}

	if err := client.DeleteTodo(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = client.DeleteTodo(ctx, created.ID)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %v", err)
	}
	if srv.Count(http.MethodPost, "/todos/100/toggle/") != 0 {
		t.Fatal("toggle path should use the created id")
	}
	if srv.Count(http.MethodPost, "/todos/101/toggle/") != 1 {
		t.Fatalf("expected one toggle call, requests: %+v", srv.Requests())
	}
}

func TestEventListAcceptsPaginatedEnvelope(t *testing.T) {
	client, srv := newTestClient(t)
	client.SetToken(apitest.ValidToken)
	start := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	srv.SeedEvents(model.Event{ID: 5, Title: "Standup", StartTime: model.Time{Time: start}, EndTime: model.Time{Time: start.Add(15 * time.Minute)}})

	events, err := client.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 1 || events[0].ID != 5 || !events[0].StartTime.Equal(start) {
		t.Fatalf("unexpected events: %+v", events)
	}

	if err := client.DeleteEvent(context.Background(), 5); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	events, err = client.ListEvents(context.Background())
	if err != nil || len(events) != 0 {
		t.Fatalf("expected empty non-nil list, got %+v, %v", events, err)
	}
	if events == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestTransportFailureIsWrapped(t *testing.T) {
	var buf bytes.Buffer
	client := NewClient("http://127.0.0.1:1/api", WithTimeout(time.Second), WithLogger(log.New(&buf, "", 0)))
	_, err := client.ListTodos(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if !strings.Contains(buf.String(), "GET /todos/ failed") {
		t.Fatalf("expected diagnostic log line, got %q", buf.String())
	}
}

func TestDetailFromBody(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"detail": "Token expired"}`, "Token expired"},
		{`{"error": "Todo not found."}`, "Todo not found."},
		{`{"non_field_errors": ["Bad credentials."]}`, "Bad credentials."},
		{`{"username": ["taken"], "email": ["invalid"]}`, "email: invalid"},
		{`not json`, ""},
		{`{}`, ""},
	}
	for _, tc := range cases {
		if got := detailFromBody([]byte(tc.body)); got != tc.want {
			t.Fatalf("detailFromBody(%s) = %q, want %q", tc.body, got, tc.want)
		}
	}
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	if got := NewClient("  ").BaseURL(); got != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", got)
	}
	if got := NewClient("http://x/api/").BaseURL(); got != "http://x/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", got)
	}
}
