package model

import (
	"errors"
	"strings"
)

var (
	ErrStartRequired  = errors.New("model: start time is required")
	ErrEndRequired    = errors.New("model: end time is required")
	ErrEndBeforeStart = errors.New("model: end time must not be before start time")
)

type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   Time   `json:"start_time"`
	EndTime     Time   `json:"end_time"`
	Location    string `json:"location,omitempty"`
	IsAllDay    bool   `json:"is_all_day,omitempty"`
}

// EventDraft is the body posted to create a calendar event.
type EventDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   Time   `json:"start_time"`
	EndTime     Time   `json:"end_time"`
	Location    string `json:"location"`
}

func (d EventDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Err: ErrTitleRequired}
	}
	if d.StartTime.IsZero() {
		return &ValidationError{Field: "start_time", Err: ErrStartRequired}
	}
	if d.EndTime.IsZero() {
		return &ValidationError{Field: "end_time", Err: ErrEndRequired}
	}
	if d.EndTime.Before(d.StartTime.Time) {
		return &ValidationError{Field: "end_time", Err: ErrEndBeforeStart}
	}
	return nil
}
