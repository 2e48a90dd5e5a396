package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/todocal/internal/model"
)

// badInputError is a form value that could not be parsed.
type badInputError struct {
	Field string
	Value string
}

func (e *badInputError) Error() string {
	return fmt.Sprintf("update: invalid %s %q", e.Field, e.Value)
}

func todoDraftFromForm(f *Modal, loc *time.Location) (model.TodoDraft, error) {
	priority, err := model.ParsePriority(f.Value("priority"))
	if err != nil {
		return model.TodoDraft{}, &model.ValidationError{Field: "priority", Err: err}
	}
	draft := model.TodoDraft{
		Title:       strings.TrimSpace(f.Value("title")),
		Description: strings.TrimSpace(f.Value("description")),
		Priority:    priority,
		IsImportant: truthy(f.Value("is_important")),
	}
	if raw := strings.TrimSpace(f.Value("due_date")); raw != "" {
		due, err := model.ParseTime(raw, loc)
		if err != nil {
			return model.TodoDraft{}, &badInputError{Field: "due_date", Value: raw}
		}
		draft.DueDate = &due
	}
	return draft, nil
}

func eventDraftFromForm(f *Modal, loc *time.Location) (model.EventDraft, error) {
	draft := model.EventDraft{
		Title:       strings.TrimSpace(f.Value("title")),
		Description: strings.TrimSpace(f.Value("description")),
		Location:    strings.TrimSpace(f.Value("location")),
	}
	for _, fld := range []struct {
		key string
		dst *model.Time
	}{{"start_time", &draft.StartTime}, {"end_time", &draft.EndTime}} {
		raw := strings.TrimSpace(f.Value(fld.key))
		if raw == "" {
			continue
		}
		t, err := model.ParseTime(raw, loc)
		if err != nil {
			return model.EventDraft{}, &badInputError{Field: fld.key, Value: raw}
		}
		*fld.dst = t
	}
	return draft, nil
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1", "*", "on":
		return true
	}
	return false
}
