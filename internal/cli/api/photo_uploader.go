package api

import (
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/repo"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// PhotoUploader загружает фото уловов на сервер (multipart, поле "file").
type PhotoUploader struct {
	c *Client
}

func NewPhotoUploader(c *Client) *PhotoUploader {
	return &PhotoUploader{c: c}
}

var _ repo.PhotoUploader = (*PhotoUploader)(nil)

// Upload отправляет фото и возвращает его постоянный URL.
// Владельца определяет сервер по токену; ownerID сверяется с ответом.
func (u *PhotoUploader) Upload(ctx context.Context, photo model.Photo, ownerID string) (string, error) {
	if len(photo.Data) == 0 {
		return "", errors.New("empty photo")
	}
	if !u.c.HasToken() {
		return "", errors.New("photo upload requires authentication")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+escapeQuotes(photo.FileName)+`"`)
	ct := photo.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(photo.Data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.c.baseURL+"/api/photos", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	data, err := u.c.send(req)
	if err != nil {
		return "", err
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &resp); err != nil || resp.URL == "" {
		return "", &SchemaError{Table: "photos", Index: -1, Column: "url", Reason: "missing url in upload response"}
	}
	if ownerID != "" && !strings.Contains(resp.URL, "/"+ownerID+"/") {
		return "", &SchemaError{Table: "photos", Index: -1, Column: "url", Reason: "uploaded photo is not under the owner's path"}
	}
	return resp.URL, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
