package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid todo priority")
	ErrTitleRequired   = errors.New("model: title is required")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	// PriorityUrgent is only ever returned by the server; the create form
	// offers the first three.
	PriorityUrgent Priority = "urgent"
)

// Creatable reports whether p may be sent in a new todo.
func (p Priority) Creatable() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority accepts the lowercase wire value or a capitalised variant.
// An empty string maps to medium, the server default.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	if !p.Creatable() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	return p, nil
}

type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	DueDate     *Time      `json:"due_date,omitempty"`
	IsImportant bool       `json:"is_important"`
	IsCompleted bool       `json:"is_completed"`
	IsOverdue   bool       `json:"is_overdue,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// TodoDraft is the body posted to create a todo.
type TodoDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	DueDate     *Time    `json:"due_date"`
	IsImportant bool     `json:"is_important"`
}

func (d TodoDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Err: ErrTitleRequired}
	}
	if d.Priority != "" && !d.Priority.Creatable() {
		return &ValidationError{Field: "priority", Err: fmt.Errorf("%w: %q", ErrInvalidPriority, d.Priority)}
	}
	return nil
}

// CountCompleted returns how many todos are marked completed.
func CountCompleted(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if t.IsCompleted {
			n++
		}
	}
	return n
}
