package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sandeepkv93/todocal/internal/model"
)

const (
	pathProfile  = "/auth/profile/"
	pathLogin    = "/auth/login/"
	pathRegister = "/auth/register/"
	pathTodos    = "/todos/"
	pathEvents   = "/calendar/events/"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Access  string     `json:"access"`
	Refresh string     `json:"refresh,omitempty"`
	User    model.User `json:"user"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type RegisterResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
	Message string `json:"message,omitempty"`
}

func (c *Client) Profile(ctx context.Context) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodGet, pathProfile, nil, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, in LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, pathLogin, in, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) (RegisterResponse, error) {
	var out RegisterResponse
	err := c.do(ctx, http.MethodPost, pathRegister, in, &out)
	return out, err
}

func (c *Client) ListTodos(ctx context.Context) ([]model.Todo, error) {
	var out listOf[model.Todo]
	if err := c.do(ctx, http.MethodGet, pathTodos, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateTodo(ctx context.Context, in model.TodoDraft) (model.Todo, error) {
	var out model.Todo
	err := c.do(ctx, http.MethodPost, pathTodos, in, &out)
	return out, err
}

// ToggleTodo flips completion on the server. The response body is ignored.
func (c *Client) ToggleTodo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("%s%d/toggle/", pathTodos, id), nil, nil)
}

func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s%d/", pathTodos, id), nil, nil)
}

func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var out listOf[model.Event]
	if err := c.do(ctx, http.MethodGet, pathEvents, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateEvent(ctx context.Context, in model.EventDraft) (model.Event, error) {
	var out model.Event
	err := c.do(ctx, http.MethodPost, pathEvents, in, &out)
	return out, err
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s%d/", pathEvents, id), nil, nil)
}
