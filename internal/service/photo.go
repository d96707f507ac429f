package service

import (
	"FishLog/internal/model"
	"FishLog/internal/repo"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPhotoTooLarge     = errors.New("photo too large")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

var extByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
	"image/gif":  "gif",
}

// PhotoService хранит фотографии уловов под путём "<owner>/<unix-ms>.<ext>".
type PhotoService struct {
	repo     repo.PhotoRepository
	maxBytes int64
	now      func() time.Time
}

func NewPhotoService(r repo.PhotoRepository, maxBytes int64) *PhotoService {
	return &PhotoService{repo: r, maxBytes: maxBytes, now: time.Now}
}

// Upload сохраняет изображение и возвращает его путь.
func (s *PhotoService) Upload(ctx context.Context, ownerID, fileName, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidInput
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return "", ErrPhotoTooLarge
	}
	ext, ct, err := photoExt(fileName, contentType)
	if err != nil {
		return "", err
	}

	// при совпадении миллисекунды сдвигаемся вперёд
	ms := s.now().UnixMilli()
	for i := 0; i < 5; i++ {
		p := &model.Photo{
			Path:        fmt.Sprintf("%s/%d.%s", ownerID, ms+int64(i), ext),
			UserID:      ownerID,
			ContentType: ct,
			Data:        data,
		}
		created, err := s.repo.CreateIfAbsent(ctx, p)
		if err != nil {
			return "", err
		}
		if created {
			return p.Path, nil
		}
	}
	return "", fmt.Errorf("photo path collision for owner %s", ownerID)
}

// Get возвращает фото по пути.
func (s *PhotoService) Get(ctx context.Context, p string) (*model.Photo, error) {
	ph, err := s.repo.Get(ctx, p)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return ph, err
}

func photoExt(fileName, contentType string) (ext, ct string, err error) {
	ct = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if e, ok := extByContentType[ct]; ok {
		return e, ct, nil
	}
	e := strings.TrimPrefix(strings.ToLower(path.Ext(fileName)), ".")
	if e == "jpeg" {
		e = "jpg"
	}
	for k, v := range extByContentType {
		if v == e {
			return e, k, nil
		}
	}
	return "", "", ErrUnsupportedFormat
}
