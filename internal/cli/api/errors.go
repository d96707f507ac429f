package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound: сервер не нашёл строку (или она принадлежит другому владельцу).
var ErrNotFound = errors.New("not found")

// StatusError: неуспешный HTTP-ответ удалённого API.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := e.Body
	if msg == "" {
		msg = http.StatusText(e.Code)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, msg)
}

// Is позволяет проверять 404 через errors.Is(err, ErrNotFound).
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Unauthorized сообщает, отклонил ли сервер запрос из-за авторизации.
func (e *StatusError) Unauthorized() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// SchemaError: строка из удалённого API не соответствует ожидаемой схеме.
type SchemaError struct {
	Table  string
	Index  int // номер строки в ответе, -1 для одиночной строки
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	where := e.Table
	if e.Index >= 0 {
		where = fmt.Sprintf("%s[%d]", e.Table, e.Index)
	}
	if e.Column != "" {
		where += "." + e.Column
	}
	return fmt.Sprintf("schema mismatch in %s: %s", where, e.Reason)
}
