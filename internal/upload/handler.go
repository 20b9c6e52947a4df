package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"

	"postgate/internal/common"
	"postgate/internal/config"
	"postgate/internal/logger"
)

// Usecase is the part of Service the HTTP layer needs.
type Usecase interface {
	UploadImage(ctx context.Context, uploaderID uint64, f File) (*Uploaded, error)
	UploadImages(ctx context.Context, uploaderID uint64, files []File) (*BatchResult, error)
	UploadVideo(ctx context.Context, uploaderID uint64, video File, thumbnail *File) (*VideoResult, error)
}

const formOverhead = 1 << 20

type Handler struct {
	svc    Usecase
	cfg    config.UploadConfig
	logger *slog.Logger
}

func NewHandler(log *slog.Logger, cfg *config.Config, svc Usecase) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, cfg: cfg.Upload, logger: log.With(slog.String("handler", "upload"))}
}

// RegisterRoutes mounts the upload endpoints behind auth.
func (h *Handler) RegisterRoutes(r *mux.Router, auth mux.MiddlewareFunc) {
	sub := r.PathPrefix("/upload").Subrouter()
	sub.Use(auth)
	sub.HandleFunc("/single", h.Single).Methods(http.MethodPost)
	sub.HandleFunc("/multiple", h.Multiple).Methods(http.MethodPost)
	sub.HandleFunc("/video", h.Video).Methods(http.MethodPost)
}

type okResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func readPart(fh *multipart.FileHeader) (File, error) {
	src, err := fh.Open()
	if err != nil {
		return File{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return File{}, err
	}
	return File{Name: fh.Filename, MimeType: fh.Header.Get("Content-Type"), Data: data}, nil
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request, limit int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			common.WriteError(w, http.StatusBadRequest, ErrFileTooLarge.Error())
			return false
		}
		common.WriteError(w, http.StatusBadRequest, ErrNoFile.Error())
		return false
	}
	return true
}

func (h *Handler) files(r *http.Request, field string) ([]File, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	out := make([]File, 0, len(headers))
	for _, fh := range headers {
		f, err := readPart(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var rejected *RejectedError
	switch {
	case errors.Is(err, ErrNoFile),
		errors.Is(err, ErrNotImage),
		errors.Is(err, ErrNotVideo),
		errors.Is(err, ErrThumbnailNotImage),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrTooManyFiles),
		errors.Is(err, ErrAllFailed),
		errors.As(err, &rejected):
		common.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		logger.FromContextOr(r.Context(), h.logger).Error("upload failed", slog.Any("error", err))
		common.WriteError(w, http.StatusInternalServerError, "upload failed")
	}
}

func (h *Handler) Single(w http.ResponseWriter, r *http.Request) {
	if !h.parse(w, r, h.cfg.MaxImageBytes+formOverhead) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	files, err := h.files(r, "file")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if len(files) == 0 {
		h.fail(w, r, ErrNoFile)
		return
	}

	out, err := h.svc.UploadImage(r.Context(), common.ViewerFromContext(r.Context()), files[0])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, okResponse{Success: true, Message: "upload succeeded", Data: out})
}

func (h *Handler) Multiple(w http.ResponseWriter, r *http.Request) {
	limit := h.cfg.MaxImageBytes*int64(h.cfg.MaxImageFiles) + formOverhead
	if !h.parse(w, r, limit) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	files, err := h.files(r, "files")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out, err := h.svc.UploadImages(r.Context(), common.ViewerFromContext(r.Context()), files)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	msg := "all images uploaded"
	if out.ErrorCount > 0 {
		msg = fmt.Sprintf("%d uploaded, %d failed", out.SuccessCount, out.ErrorCount)
	}
	common.WriteJSON(w, http.StatusOK, okResponse{Success: true, Message: msg, Data: out})
}

func (h *Handler) Video(w http.ResponseWriter, r *http.Request) {
	if !h.parse(w, r, 2*h.cfg.MaxVideoBytes+formOverhead) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	videos, err := h.files(r, "file")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if len(videos) == 0 {
		h.fail(w, r, ErrNoFile)
		return
	}
	thumbs, err := h.files(r, "thumbnail")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var thumb *File
	if len(thumbs) > 0 {
		thumb = &thumbs[0]
	}

	out, err := h.svc.UploadVideo(r.Context(), common.ViewerFromContext(r.Context()), videos[0], thumb)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, okResponse{Success: true, Message: "upload succeeded", Data: out})
}
