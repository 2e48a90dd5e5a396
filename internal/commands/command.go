package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/todocal/internal/model"
)

type Type string

const (
	TypeTodo     Type = "todo"
	TypeEvent    Type = "event"
	TypeRefresh  Type = "refresh"
	TypeLogout   Type = "logout"
	TypeLogin    Type = "login"
	TypeRegister Type = "register"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

// DefaultEventLength is used when an event command gives no end time.
const DefaultEventLength = time.Hour

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type TodoArgs struct {
	Title     string
	Priority  model.Priority
	Important bool
	Due       *model.Time
}

func (a TodoArgs) Draft() model.TodoDraft {
	return model.TodoDraft{Title: a.Title, Priority: a.Priority, IsImportant: a.Important, DueDate: a.Due}
}

type EventArgs struct {
	Title    string
	Start    model.Time
	End      model.Time
	Location string
}

func (a EventArgs) Draft() model.EventDraft {
	return model.EventDraft{Title: a.Title, StartTime: a.Start, EndTime: a.End, Location: a.Location}
}

type Command struct {
	Type  Type
	Raw   string
	Todo  *TodoArgs
	Event *EventArgs
}

// Parse reads a palette line, interpreting zone-less times in the local zone.
func Parse(input string) (Command, error) {
	return ParseIn(input, time.Local)
}

func ParseIn(input string, loc *time.Location) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeTodo:
		return parseTodo(input, args, loc)
	case TypeEvent:
		return parseEvent(input, args, loc)
	case TypeRefresh, TypeLogout, TypeLogin, TypeRegister:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseTodo(raw string, args []string, loc *time.Location) (Command, error) {
	out := TodoArgs{Priority: model.PriorityMedium}
	var words []string
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case arg == "*":
			out.Important = true
		case strings.HasPrefix(arg, "!") && len(arg) > 1:
			p, err := model.ParsePriority(lower[1:])
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown priority %q", arg[1:])}
			}
			out.Priority = p
		case strings.HasPrefix(lower, "due:"):
			due, err := model.ParseTime(arg[len("due:"):], loc)
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid due date %q", arg[len("due:"):])}
			}
			out.Due = &due
		default:
			words = append(words, arg)
		}
	}
	out.Title = strings.Join(words, " ")
	if out.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "todo requires a title"}
	}
	return Command{Type: TypeTodo, Raw: raw, Todo: &out}, nil
}

func parseEvent(raw string, args []string, loc *time.Location) (Command, error) {
	var (
		out      EventArgs
		words    []string
		location []string
		hasStart bool
		hasEnd   bool
	)
	for i, arg := range args {
		if strings.HasPrefix(strings.ToLower(arg), "at:") {
			location = append([]string{arg[len("at:"):]}, args[i+1:]...)
			break
		}
		switch {
		case strings.HasPrefix(arg, "@") && len(arg) > 1:
			t, err := model.ParseTime(arg[1:], loc)
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid start %q", arg[1:])}
			}
			out.Start, hasStart = t, true
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			t, err := model.ParseTime(arg[1:], loc)
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid end %q", arg[1:])}
			}
			out.End, hasEnd = t, true
		default:
			words = append(words, arg)
		}
	}
	out.Title = strings.Join(words, " ")
	out.Location = strings.TrimSpace(strings.Join(location, " "))
	if out.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "event requires a title"}
	}
	if !hasStart {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "event requires @start"}
	}
	if !hasEnd {
		out.End = model.Time{Time: out.Start.Add(DefaultEventLength)}
	}
	if out.End.Before(out.Start.Time) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "event ends before it starts"}
	}
	return Command{Type: TypeEvent, Raw: raw, Event: &out}, nil
}
