package model

import (
	"errors"
	"testing"
	"time"
)

func TestEventDraftValidate(t *testing.T) {
	start := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
	draft := EventDraft{
		Title:     "Design review",
		StartTime: Time{Time: start},
		EndTime:   Time{Time: start.Add(time.Hour)},
	}
	if err := draft.Validate(); err != nil {
		t.Fatalf("expected valid event draft, got: %v", err)
	}

	draft.EndTime = Time{Time: start.Add(-time.Minute)}
	if err := draft.Validate(); !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart, got: %v", err)
	}

	draft.EndTime = Time{}
	if err := draft.Validate(); !errors.Is(err, ErrEndRequired) {
		t.Fatalf("expected ErrEndRequired, got: %v", err)
	}

	draft.StartTime = Time{}
	if err := draft.Validate(); !errors.Is(err, ErrStartRequired) {
		t.Fatalf("expected ErrStartRequired, got: %v", err)
	}
}

func TestUserDisplayName(t *testing.T) {
	u := User{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
	if got := u.DisplayName(); got != "Ada Lovelace" {
		t.Fatalf("unexpected display name: %q", got)
	}
	u.FirstName, u.LastName = "", ""
	if got := u.DisplayName(); got != "ada@example.com" {
		t.Fatalf("expected email fallback, got %q", got)
	}
}
