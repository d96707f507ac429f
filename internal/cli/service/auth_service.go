package service

import (
	"FishLog/internal/cli/api"
	"FishLog/internal/cli/repo"
	"FishLog/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrLoginTaken         = errors.New("login already in use")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Register создаёт учётную запись и сразу сохраняет сессию.
	Register(ctx context.Context, login, password string) error

	// Login логирование пользователя.
	Login(ctx context.Context, login, password string) error

	// Logout очищает локальный контекст аутентификации.
	Logout() error

	// CurrentUser возвращает логин текущего пользователя, если он установлен.
	CurrentUser() (string, error)
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID string `json:"user_id"`
	Login  string `json:"login"`
}

type authService struct {
	cfg    *config.Config
	tokens repo.TokenStore
	users  repo.UserContextStore
}

func NewAuthService(cfg *config.Config, tokens repo.TokenStore, users repo.UserContextStore) AuthService {
	return &authService{cfg: cfg, tokens: tokens, users: users}
}

func (s *authService) Register(ctx context.Context, login, password string) error {
	return s.authenticate(ctx, "/api/user/register", login, password)
}

func (s *authService) Login(ctx context.Context, login, password string) error {
	return s.authenticate(ctx, "/api/user/login", login, password)
}

func (s *authService) authenticate(ctx context.Context, path, login, password string) error {
	endpoint := strings.TrimRight(s.cfg.ServerURL, "/") + path
	resp, body, err := api.PostJSON(ctx, endpoint, credentials{Login: login, Password: password}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusConflict:
		return ErrLoginTaken
	case http.StatusUnauthorized:
		return ErrInvalidCredentials
	default:
		return fmt.Errorf("server error: %s", string(body))
	}

	var ar authResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	if ar.UserID == "" {
		return errors.New("server did not return user id")
	}
	if err := api.PersistAuthFromResponse(resp, s.tokens); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	if err := s.users.SaveUserID(ar.UserID); err != nil {
		return fmt.Errorf("saving user id: %w", err)
	}
	if ar.Login == "" {
		ar.Login = login
	}
	if err := s.users.SaveLogin(ar.Login); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}
	return nil
}

func (s *authService) Logout() error {
	return s.tokens.Clear()
}

func (s *authService) CurrentUser() (string, error) {
	if _, err := s.tokens.Load(); err != nil {
		return "", ErrNotAuthenticated
	}
	return s.users.LoadLogin()
}
