package api

import (
	"FishLog/internal/config"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client: HTTP-клиент удалённого API FishLog.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient создаёт клиента по конфигу; token может быть пустым (анонимные запросы).
func NewClient(cfg *config.Config, token string) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.ServerURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

// HasToken сообщает, будут ли запросы авторизованы.
func (c *Client) HasToken() bool { return c.token != "" }

// do выполняет запрос; тело ответа возвращается только для 2xx.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	setAuth(req, c.token)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method: req.Method,
			Path:   req.URL.Path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}

// SessionStatus: ответ /api/user/status.
type SessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id"`
}

// Status проверяет, принимает ли сервер текущий токен.
func (c *Client) Status(ctx context.Context) (*SessionStatus, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/user/status", nil)
	if err != nil {
		return nil, err
	}
	var st SessionStatus
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, &SchemaError{Table: "user_status", Index: -1, Reason: err.Error()}
	}
	return &st, nil
}
