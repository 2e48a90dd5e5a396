// Package session manages the bearer token and the signed-in user.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sandeepkv93/todocal/internal/api"
	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/sandeepkv93/todocal/internal/storage"
)

var (
	ErrNoToken             = errors.New("session: no stored token")
	ErrCredentialsRequired = errors.New("session: email and password are required")
	ErrPasswordMismatch    = errors.New("session: passwords do not match")
)

// AuthAPI is the part of the REST client the session needs.
type AuthAPI interface {
	SetToken(token string)
	Profile(ctx context.Context) (model.User, error)
	Login(ctx context.Context, in api.LoginRequest) (api.LoginResponse, error)
	Register(ctx context.Context, in api.RegisterRequest) (api.RegisterResponse, error)
}

type RegisterForm struct {
	Email           string
	Username        string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm string
}

type Manager struct {
	client AuthAPI
	store  storage.KeyValueStore
	logger *log.Logger

	mu    sync.Mutex
	token string
	user  *model.User
}

func NewManager(client AuthAPI, store storage.KeyValueStore, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{client: client, store: store, logger: logger}
}

// CheckAuthStatus restores the persisted token and confirms it against the
// profile endpoint. Without a stored token it returns ErrNoToken and makes
// no request. Any profile failure discards the token.
func (m *Manager) CheckAuthStatus(ctx context.Context) (model.User, error) {
	token, err := m.store.Get(ctx, storage.KeyAuthToken)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		m.logger.Printf("session: read stored token: %v", err)
	}
	if strings.TrimSpace(token) == "" {
		return model.User{}, ErrNoToken
	}

	m.setToken(token)
	user, err := m.client.Profile(ctx)
	if err != nil {
		m.logger.Printf("session: auth check failed: %v", err)
		m.clear(ctx)
		return model.User{}, fmt.Errorf("session: auth check: %w", err)
	}
	m.setUser(user)
	return user, nil
}

func (m *Manager) Login(ctx context.Context, email, password string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.User{}, &model.ValidationError{Err: ErrCredentialsRequired}
	}
	resp, err := m.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		m.logger.Printf("session: login failed: %v", err)
		return model.User{}, err
	}
	m.persist(ctx, resp.Access)
	m.setUser(resp.User)
	return resp.User, nil
}

// Register creates the account and signs in with the returned token. The
// current user is built from the submitted form, not from the response.
func (m *Manager) Register(ctx context.Context, form RegisterForm) (model.User, error) {
	if form.Password != form.PasswordConfirm {
		return model.User{}, &model.ValidationError{Field: "password_confirm", Err: ErrPasswordMismatch}
	}
	resp, err := m.client.Register(ctx, api.RegisterRequest{
		Email:           strings.TrimSpace(form.Email),
		Username:        strings.TrimSpace(form.Username),
		FirstName:       strings.TrimSpace(form.FirstName),
		LastName:        strings.TrimSpace(form.LastName),
		Password:        form.Password,
		PasswordConfirm: form.PasswordConfirm,
	})
	if err != nil {
		m.logger.Printf("session: register failed: %v", err)
		return model.User{}, err
	}
	user := model.User{
		Email:     strings.TrimSpace(form.Email),
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
	}
	m.persist(ctx, resp.Access)
	m.setUser(user)
	return user, nil
}

// Logout forgets the token and user locally. The server is not called.
func (m *Manager) Logout(ctx context.Context) {
	m.clear(ctx)
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Manager) User() (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return model.User{}, false
	}
	return *m.user, true
}

// TokenExpiry reads the exp claim of the current access token without
// verifying its signature. It is informational only.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	return TokenExpiry(m.Token())
}

func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (m *Manager) persist(ctx context.Context, token string) {
	m.setToken(token)
	if err := m.store.Set(ctx, storage.KeyAuthToken, token); err != nil {
		m.logger.Printf("session: persist token: %v", err)
	}
}

func (m *Manager) clear(ctx context.Context) {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
	m.client.SetToken("")
	if err := m.store.Delete(ctx, storage.KeyAuthToken); err != nil {
		m.logger.Printf("session: delete token: %v", err)
	}
}

func (m *Manager) setToken(token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	m.client.SetToken(token)
}

func (m *Manager) setUser(user model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := user
	m.user = &u
}
