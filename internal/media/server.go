// Package media streams stored objects back over HTTP.
package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"postgate/internal/common"
	"postgate/internal/dbmongo"
)

type Storage interface {
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.MediaFile, error)
}

type HTTPServer struct {
	storage Storage
	router  *mux.Router
	logger  *slog.Logger
}

func NewHTTPServer(log *slog.Logger, storage Storage) *HTTPServer {
	if log == nil {
		log = slog.Default()
	}
	s := &HTTPServer{
		storage: storage,
		router:  mux.NewRouter(),
		logger:  log.With(slog.String("service", "media")),
	}
	s.router.Use(common.RequestLogger(s.logger))
	s.router.HandleFunc("/media/{fileId}", s.serveFile).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	return s
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	body, info, err := s.storage.DownloadFile(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, dbmongo.ErrFileNotFound) {
			common.WriteError(w, http.StatusNotFound, "file not found")
			return
		}
		s.logger.Error("download failed", slog.String("file_id", fileID), slog.Any("error", err))
		common.WriteError(w, http.StatusInternalServerError, "download failed")
		return
	}
	defer body.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = contentTypeFor(info.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, body); err != nil {
		s.logger.Warn("streaming interrupted", slog.String("file_id", fileID), slog.Any("error", err))
	}
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	default:
		return "application/octet-stream"
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "media"})
}
