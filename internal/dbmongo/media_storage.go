package dbmongo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"postgate/internal/common"
	"postgate/internal/upload"
)

var ErrFileNotFound = errors.New("media file not found")

// Bucket is the slice of GridFS the storage needs.
type Bucket interface {
	Upload(filename string, src io.Reader, metadata bson.M) (primitive.ObjectID, error)
	Open(id primitive.ObjectID) (io.ReadCloser, *gridfs.File, error)
	Delete(id primitive.ObjectID) error
}

type gridBucket struct {
	b *gridfs.Bucket
}

// NewGridBucket adapts a driver bucket to Bucket.
func NewGridBucket(b *gridfs.Bucket) Bucket {
	return &gridBucket{b: b}
}

func (g *gridBucket) Upload(filename string, src io.Reader, metadata bson.M) (primitive.ObjectID, error) {
	return g.b.UploadFromStream(filename, src, options.GridFSUpload().SetMetadata(metadata))
}

func (g *gridBucket) Open(id primitive.ObjectID) (io.ReadCloser, *gridfs.File, error) {
	stream, err := g.b.OpenDownloadStream(id)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, err
	}
	return stream, stream.GetFile(), nil
}

func (g *gridBucket) Delete(id primitive.ObjectID) error {
	err := g.b.Delete(id)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return ErrFileNotFound
	}
	return err
}

type MediaStorage struct {
	bucket  Bucket
	baseURL string
	logger  *slog.Logger
}

// NewMediaStorage serves objects under baseURL, e.g. http://host:8080/media/.
func NewMediaStorage(log *slog.Logger, bucket Bucket, baseURL string) *MediaStorage {
	if log == nil {
		log = slog.Default()
	}
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &MediaStorage{
		bucket:  bucket,
		baseURL: baseURL,
		logger:  log.With(slog.String("service", "media_storage")),
	}
}

type MediaFile struct {
	ID          string               `json:"id"`
	Filename    string               `json:"filename"`
	Size        int64                `json:"size"`
	FileType    common.MediaFileType `json:"file_type"`
	ContentType string               `json:"content_type"`
	UploadedAt  time.Time            `json:"uploaded_at"`
}

// Store writes one object to GridFS and reports its public URL. The
// ObjectID hex doubles as FilePath.
func (ms *MediaStorage) Store(ctx context.Context, kind common.MediaFileType, data []byte, filename, mimeType string) (upload.Result, error) {
	if err := ctx.Err(); err != nil {
		return upload.Result{}, err
	}
	if !kind.IsValid() {
		return upload.Result{Success: false, Message: fmt.Sprintf("unsupported media kind %q", kind)}, nil
	}
	if len(data) == 0 {
		return upload.Result{Success: false, Message: "empty file"}, nil
	}

	metadata := bson.M{
		"file_type":    kind.String(),
		"content_type": mimeType,
		"uploaded_at":  time.Now(),
	}
	id, err := ms.bucket.Upload(filename, bytes.NewReader(data), metadata)
	if err != nil {
		return upload.Result{}, fmt.Errorf("upload failed: %w", err)
	}

	hexID := id.Hex()
	ms.logger.Debug("object stored", slog.String("id", hexID), slog.String("kind", kind.String()), slog.Int("size", len(data)))
	return upload.Result{Success: true, URL: ms.baseURL + hexID, FilePath: hexID}, nil
}

// DownloadFile opens an object for streaming. The caller closes the reader.
func (ms *MediaStorage) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *MediaFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID %q: %w", fileID, ErrFileNotFound)
	}

	stream, info, err := ms.bucket.Open(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	var metadata bson.M
	if len(info.Metadata) > 0 {
		if err := bson.Unmarshal(info.Metadata, &metadata); err != nil {
			ms.logger.Warn("unreadable metadata", slog.String("id", fileID), slog.Any("error", err))
		}
	}

	return stream, &MediaFile{
		ID:          fileID,
		Filename:    info.Name,
		Size:        info.Length,
		FileType:    common.MediaFileType(getStringFromMap(metadata, "file_type")),
		ContentType: getStringFromMap(metadata, "content_type"),
		UploadedAt:  info.UploadDate,
	}, nil
}

func (ms *MediaStorage) DeleteFile(ctx context.Context, fileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID %q: %w", fileID, ErrFileNotFound)
	}
	return ms.bucket.Delete(objectID)
}

func getStringFromMap(m bson.M, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}
