package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/todocal/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/todo pay rent", TypeTodo},
		{"event standup @2026-03-02T09:00", TypeEvent},
		{"refresh", TypeRefresh},
		{"/logout", TypeLogout},
		{"LOGIN", TypeLogin},
		{"register", TypeRegister},
	}

	for _, tc := range cases {
		cmd, err := ParseIn(tc.in, time.UTC)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseTodoModifiers(t *testing.T) {
	cmd, err := ParseIn("todo pay rent !high * due:2026-03-01", time.UTC)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	a := cmd.Todo
	if a.Title != "pay rent" || a.Priority != model.PriorityHigh || !a.Important {
		t.Fatalf("unexpected todo args: %+v", a)
	}
	if a.Due == nil || !a.Due.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected due date: %v", a.Due)
	}

	draft := a.Draft()
	if err := draft.Validate(); err != nil {
		t.Fatalf("draft should validate: %v", err)
	}
}

func TestParseTodoDefaultsToMedium(t *testing.T) {
	cmd, err := ParseIn("todo buy milk", time.UTC)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Todo.Priority != model.PriorityMedium || cmd.Todo.Important || cmd.Todo.Due != nil {
		t.Fatalf("unexpected defaults: %+v", cmd.Todo)
	}
}

func TestParseEventRangeAndLocation(t *testing.T) {
	cmd, err := ParseIn("event team sync @2026-03-02T09:00 -2026-03-02T09:30 at:Room 4", time.UTC)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	a := cmd.Event
	if a.Title != "team sync" || a.Location != "Room 4" {
		t.Fatalf("unexpected event args: %+v", a)
	}
	if got := a.End.Sub(a.Start.Time); got != 30*time.Minute {
		t.Fatalf("duration = %v, want 30m", got)
	}
}

func TestParseEventDefaultLength(t *testing.T) {
	cmd, err := ParseIn("event dentist @2026-03-02T14:00", time.UTC)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := cmd.Event.End.Sub(cmd.Event.Start.Time); got != DefaultEventLength {
		t.Fatalf("duration = %v, want %v", got, DefaultEventLength)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	cases := []string{
		"todo",
		"todo !high",
		"todo x !critical",
		"todo x due:tomorrow",
		"event standup",
		"event @2026-03-02T09:00",
		"event x @2026-03-02T09:00 -2026-03-02T08:00",
		"refresh now",
	}
	for _, in := range cases {
		_, err := ParseIn(in, time.UTC)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "  ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/todo write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Todo: func(a TodoArgs) (Result, error) {
			called = true
			if a.Title != "write docs" {
				t.Fatalf("unexpected title: %q", a.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("refresh")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
