package upload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"postgate/internal/common"
	"postgate/internal/config"
	"postgate/internal/dbmysql"
	"postgate/internal/transcode"
)

type Uploaded struct {
	OriginalName string `json:"originalname"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

type FailedFile struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// BatchResult is the partial-failure report of a multi-image upload.
type BatchResult struct {
	Uploaded     []Uploaded   `json:"uploaded"`
	Errors       []FailedFile `json:"errors"`
	Total        int          `json:"total"`
	SuccessCount int          `json:"successCount"`
	ErrorCount   int          `json:"errorCount"`
}

type DashInfo struct {
	Enabled   bool                `json:"enabled"`
	MPDPath   string              `json:"mpdPath"`
	Qualities []transcode.Quality `json:"qualities"`
}

type VideoResult struct {
	OriginalName string    `json:"originalname"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	FilePath     string    `json:"filePath,omitempty"`
	CoverURL     *string   `json:"coverUrl"`
	Dash         *DashInfo `json:"dash,omitempty"`
}

type Service struct {
	store      Store
	refs       dbmysql.MediaRefRepository
	transcoder transcode.Service
	cfg        config.UploadConfig
	logger     *slog.Logger
}

// NewService wires the upload flow. refs and transcoder may be nil.
func NewService(log *slog.Logger, cfg *config.Config, store Store, refs dbmysql.MediaRefRepository, transcoder transcode.Service) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:      store,
		refs:       refs,
		transcoder: transcoder,
		cfg:        cfg.Upload,
		logger:     log.With(slog.String("service", "upload")),
	}
}

func (s *Service) checkImage(f File) error {
	if len(f.Data) == 0 {
		return ErrNoFile
	}
	if !isImage(f.MimeType) {
		return ErrNotImage
	}
	if f.Size() > s.cfg.MaxImageBytes {
		return ErrFileTooLarge
	}
	return nil
}

func (s *Service) put(ctx context.Context, uploaderID uint64, kind common.MediaFileType, f File) (Result, error) {
	res, err := s.store.Store(ctx, kind, f.Data, storageName(f.Data, f.Name), f.MimeType)
	if err != nil {
		return Result{}, fmt.Errorf("store %s: %w", f.Name, err)
	}
	if !res.Success {
		return res, &RejectedError{Message: res.Message}
	}
	s.record(ctx, uploaderID, kind, f, res)
	return res, nil
}

// record keeps a media_refs row per stored object. Failures only log.
func (s *Service) record(ctx context.Context, uploaderID uint64, kind common.MediaFileType, f File, res Result) {
	if s.refs == nil {
		return
	}
	fileID := res.FilePath
	if fileID == "" {
		fileID = storageName(f.Data, f.Name)
	}
	ref := &dbmysql.MediaRef{
		FileID:      fileID,
		Kind:        kind.String(),
		FileName:    f.Name,
		ContentType: f.MimeType,
		URL:         res.URL,
		Size:        f.Size(),
		UploadedBy:  uploaderID,
	}
	if err := s.refs.Create(ctx, ref); err != nil {
		s.logger.Warn("media ref not recorded", slog.String("file_id", fileID), slog.Any("error", err))
	}
}

func (s *Service) UploadImage(ctx context.Context, uploaderID uint64, f File) (*Uploaded, error) {
	if err := s.checkImage(f); err != nil {
		return nil, err
	}
	res, err := s.put(ctx, uploaderID, common.MediaFileTypeImage, f)
	if err != nil {
		return nil, err
	}

	s.logger.Info("image uploaded", slog.Uint64("user_id", uploaderID), slog.String("file", f.Name))
	return &Uploaded{OriginalName: f.Name, Size: f.Size(), URL: res.URL}, nil
}

// UploadImages validates every file up front, then stores them one by one
// and reports per-file failures. It fails only when nothing was stored.
func (s *Service) UploadImages(ctx context.Context, uploaderID uint64, files []File) (*BatchResult, error) {
	if len(files) == 0 {
		return nil, ErrNoFile
	}
	if len(files) > s.cfg.MaxImageFiles {
		return nil, ErrTooManyFiles
	}
	for _, f := range files {
		if err := s.checkImage(f); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
	}

	out := &BatchResult{Uploaded: []Uploaded{}, Errors: []FailedFile{}, Total: len(files)}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := s.put(ctx, uploaderID, common.MediaFileTypeImage, f)
		if err != nil {
			s.logger.Warn("image upload failed", slog.String("file", f.Name), slog.Any("error", err))
			out.Errors = append(out.Errors, FailedFile{File: f.Name, Error: err.Error()})
			continue
		}
		out.Uploaded = append(out.Uploaded, Uploaded{OriginalName: f.Name, Size: f.Size(), URL: res.URL})
	}
	out.SuccessCount = len(out.Uploaded)
	out.ErrorCount = len(out.Errors)

	if out.SuccessCount == 0 {
		return out, ErrAllFailed
	}
	s.logger.Info("images uploaded", slog.Uint64("user_id", uploaderID), slog.Int("count", out.SuccessCount))
	return out, nil
}

// UploadVideo stores the video and an optional thumbnail as its cover. When
// transcoding is enabled and ffmpeg is available the video is also turned
// into DASH; a failed transcode or thumbnail never fails the upload.
func (s *Service) UploadVideo(ctx context.Context, uploaderID uint64, video File, thumbnail *File) (*VideoResult, error) {
	if len(video.Data) == 0 {
		return nil, ErrNoFile
	}
	if !isAllowedVideo(video.MimeType) {
		return nil, ErrNotVideo
	}
	if video.Size() > s.cfg.MaxVideoBytes {
		return nil, ErrFileTooLarge
	}
	if thumbnail != nil && len(thumbnail.Data) > 0 {
		if !isImage(thumbnail.MimeType) {
			return nil, ErrThumbnailNotImage
		}
		if thumbnail.Size() > s.cfg.MaxVideoBytes {
			return nil, ErrFileTooLarge
		}
	}

	dash := s.transcode(ctx, video)

	res, err := s.put(ctx, uploaderID, common.MediaFileTypeVideo, video)
	if err != nil {
		return nil, err
	}

	out := &VideoResult{
		OriginalName: video.Name,
		Size:         video.Size(),
		URL:          res.URL,
		FilePath:     res.FilePath,
	}

	if thumbnail != nil && len(thumbnail.Data) > 0 {
		cover, err := s.put(ctx, uploaderID, common.MediaFileTypeCover, *thumbnail)
		if err != nil {
			s.logger.Warn("thumbnail upload failed", slog.String("file", thumbnail.Name), slog.Any("error", err))
		} else {
			out.CoverURL = &cover.URL
		}
	}

	if dash != nil {
		out.Dash = &DashInfo{Enabled: true, MPDPath: dash.MPDPath, Qualities: dash.Qualities}
	}

	s.logger.Info("video uploaded",
		slog.Uint64("user_id", uploaderID),
		slog.String("file", video.Name),
		slog.Bool("cover", out.CoverURL != nil),
		slog.Bool("transcoded", out.Dash != nil))
	return out, nil
}

func (s *Service) transcode(ctx context.Context, video File) *transcode.Data {
	if s.transcoder == nil {
		return nil
	}
	tc := s.transcoder.Config()
	if !tc.Enabled {
		return nil
	}
	if !s.transcoder.Available(ctx) {
		s.logger.Warn("ffmpeg unavailable, skipping transcode")
		return nil
	}

	if err := os.MkdirAll(s.cfg.TempDir, 0o755); err != nil {
		s.logger.Error("cannot create temp dir", slog.String("dir", s.cfg.TempDir), slog.Any("error", err))
		return nil
	}
	input := filepath.Join(s.cfg.TempDir, "input_"+uuid.NewString()+strings.ToLower(filepath.Ext(video.Name)))
	if err := os.WriteFile(input, video.Data, 0o600); err != nil {
		s.logger.Error("cannot write temp video", slog.Any("error", err))
		return nil
	}
	defer func() {
		if err := os.Remove(input); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("temp video not removed", slog.String("path", input), slog.Any("error", err))
		}
	}()

	res, err := s.transcoder.Transcode(ctx, input, tc.OutputDir, transcode.Options{
		MinBitrate: tc.MinBitrate,
		MaxBitrate: tc.MaxBitrate,
	})
	if err != nil {
		s.logger.Error("transcode error", slog.Any("error", err))
		return nil
	}
	if !res.Success || res.Data == nil {
		s.logger.Warn("transcode failed, keeping original video", slog.String("message", res.Message))
		return nil
	}
	return res.Data
}
