package service

import (
	"FishLog/internal/cli/repo"
	"FishLog/internal/config"
)

// Session отдаёт владельца из сохранённого контекста пользователя
// и признак настроенного удалённого бэкенда из конфига.
type Session struct {
	cfg   *config.Config
	users repo.UserContextStore
	token repo.TokenStore
}

var _ repo.Session = (*Session)(nil)

func NewSession(cfg *config.Config, users repo.UserContextStore, token repo.TokenStore) *Session {
	return &Session{cfg: cfg, users: users, token: token}
}

// OwnerID возвращает id владельца, если пользователь вошёл (есть и id, и токен).
func (s *Session) OwnerID() (string, bool) {
	if s == nil || s.users == nil || s.token == nil {
		return "", false
	}
	if tok, err := s.token.Load(); err != nil || tok == "" {
		return "", false
	}
	id, err := s.users.LoadUserID()
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

func (s *Session) RemoteConfigured() bool {
	return s != nil && s.cfg.RemoteConfigured()
}

// Token возвращает сохранённый токен или пустую строку.
func (s *Session) Token() string {
	if s == nil || s.token == nil {
		return ""
	}
	tok, err := s.token.Load()
	if err != nil {
		return ""
	}
	return tok
}
