// Package uploader is the image upload collaborator. Handlers hand it raw
// image payloads (multipart file, base64 string, or an already-hosted URL)
// and persist only the URL it returns.
package uploader

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores raw image bytes and returns a public URL for them.
type Uploader interface {
	Store(ext string, data []byte) (string, error)
}

// Local writes uploads to a directory served as static files.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal returns an Uploader writing into dir; returned URLs are rooted at
// baseURL (e.g. "/public/uploads").
func NewLocal(dir, baseURL string) *Local {
	return &Local{dir: dir, baseURL: baseURL}
}

func (l *Local) Store(ext string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image payload")
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path.Join(l.baseURL, name), nil
}

// ResolveImage turns the three accepted image input shapes into a stored URL:
//   - empty input stays empty,
//   - http(s) URLs and already-served paths pass through untouched,
//   - base64 payloads (with or without a data-URI prefix) are decoded and stored.
func ResolveImage(u Uploader, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") || strings.HasPrefix(input, "/") {
		return input, nil
	}

	payload := input
	if strings.HasPrefix(input, "data:") {
		idx := strings.Index(input, ";base64,")
		if idx < 0 {
			return "", errors.New("malformed data URI, expected base64 encoding")
		}
		payload = input[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid base64 image payload: %w", err)
	}
	return u.Store(extForData(data), data)
}

// SaveMultipart stores an uploaded form file.
func SaveMultipart(u Uploader, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = extForData(data)
	}
	return u.Store(ext, data)
}

func extForData(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
