package commands

import "fmt"

type Result struct {
	Message string
}

// Handlers receive parsed arguments. A nil handler means the command is not
// available in the current context.
type Handlers struct {
	Todo     func(TodoArgs) (Result, error)
	Event    func(EventArgs) (Result, error)
	Refresh  func() (Result, error)
	Logout   func() (Result, error)
	Login    func() (Result, error)
	Register func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeTodo:
		if handlers.Todo == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Todo(*cmd.Todo)
	case TypeEvent:
		if handlers.Event == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Event(*cmd.Event)
	case TypeRefresh:
		return call(cmd.Type, handlers.Refresh)
	case TypeLogout:
		return call(cmd.Type, handlers.Logout)
	case TypeLogin:
		return call(cmd.Type, handlers.Login)
	case TypeRegister:
		return call(cmd.Type, handlers.Register)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func call(t Type, fn func() (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missing(t)
	}
	return fn()
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
