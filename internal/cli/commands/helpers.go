package commands

import (
	"FishLog/internal/cli/bootstrap"
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/service"
	"FishLog/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Logger: логгер сервисов CLI; main заменяет его на настоящий.
var Logger = zap.NewNop().Sugar()

// openApp открывает локальную базу и собирает сервисы на время одной команды.
var openApp = func(ctx context.Context, cfg *config.Config) (*bootstrap.App, func() error, error) {
	return bootstrap.Open(ctx, cfg, Logger)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

// parseTime принимает RFC3339 или локальное время без зоны.
func parseTime(s string) (time.Time, error) {
	for _, l := range timeLayouts {
		if l == time.RFC3339 {
			if t, err := time.Parse(l, s); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(l, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected YYYY-MM-DDTHH:MM", s)
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

// parseLatLon разбирает "lat,lon" или "lat lon".
func parseLatLon(s string) (float64, float64, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ' ' || r == '/' })
	if len(parts) != 2 {
		parts = strings.Split(s, ",")
	}
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinates %q, expected lat,lon", s)
	}
	lat, err := parseFloat("latitude", parts[0])
	if err != nil {
		return 0, 0, err
	}
	lon, err := parseFloat("longitude", parts[1])
	if err != nil {
		return 0, 0, err
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("coordinates out of range: %g,%g", lat, lon)
	}
	return lat, lon, nil
}

// loadPhoto читает файл изображения и определяет его тип.
func loadPhoto(path string) (*model.Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("photo file is empty")
	}
	return &model.Photo{
		FileName:    filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

// errFromService превращает текст ошибки репозитория в error.
// Отсутствие сессии сохраняется как service.ErrNotAuthenticated.
func errFromService(msg, fallback string) error {
	if msg == "" {
		msg = fallback
	}
	if prefix, ok := strings.CutSuffix(msg, service.ErrNotAuthenticated.Error()); ok {
		prefix = strings.TrimSuffix(prefix, ": ")
		if prefix == "" {
			return service.ErrNotAuthenticated
		}
		return fmt.Errorf("%s: %w", prefix, service.ErrNotAuthenticated)
	}
	return errors.New(msg)
}

func boolMark(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
