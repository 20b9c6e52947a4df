// Package upload validates and stores post media and runs the optional
// DASH transcode for videos.
package upload

import (
	"context"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"

	"postgate/internal/common"
)

var (
	ErrNoFile            = errors.New("no file uploaded")
	ErrNotImage          = errors.New("only image files are allowed")
	ErrNotVideo          = errors.New("only video files are allowed")
	ErrThumbnailNotImage = errors.New("thumbnail must be an image")
	ErrFileTooLarge      = errors.New("file exceeds the size limit")
	ErrTooManyFiles      = errors.New("too many files")
	ErrAllFailed         = errors.New("all images failed to upload")
)

// RejectedError is returned when the store declined a file.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "storage rejected the file"
	}
	return e.Message
}

// Result is what a Store reports for one object.
type Result struct {
	Success  bool   `json:"success"`
	URL      string `json:"url,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Store persists one object. Success false with a Message is a refusal;
// a non-nil error is a transport or storage fault.
type Store interface {
	Store(ctx context.Context, kind common.MediaFileType, data []byte, filename, mimeType string) (Result, error)
}

// File is one multipart part held in memory.
type File struct {
	Name     string
	MimeType string
	Data     []byte
}

func (f File) Size() int64 {
	return int64(len(f.Data))
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":       true,
	"video/avi":       true,
	"video/mov":       true,
	"video/wmv":       true,
	"video/flv":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"video/3gpp":      true,
}

func isImage(mimeType string) bool {
	kind, ok := common.DetectFileType(mimeType)
	return ok && kind == common.MediaFileTypeImage
}

func isAllowedVideo(mimeType string) bool {
	return allowedVideoTypes[strings.ToLower(strings.TrimSpace(mimeType))]
}

// storageName derives a content-addressed object name that keeps the
// original extension.
func storageName(data []byte, original string) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:16]) + strings.ToLower(filepath.Ext(original))
}
