package dbmongo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"postgate/internal/common"
)

type mockBucket struct {
	mock.Mock
}

func (m *mockBucket) Upload(filename string, src io.Reader, metadata bson.M) (primitive.ObjectID, error) {
	data, _ := io.ReadAll(src)
	args := m.Called(filename, data, metadata)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockBucket) Open(id primitive.ObjectID) (io.ReadCloser, *gridfs.File, error) {
	args := m.Called(id)
	rc, _ := args.Get(0).(io.ReadCloser)
	info, _ := args.Get(1).(*gridfs.File)
	return rc, info, args.Error(2)
}

func (m *mockBucket) Delete(id primitive.ObjectID) error {
	return m.Called(id).Error(0)
}

func TestMediaStorage_Store(t *testing.T) {
	id := primitive.NewObjectID()
	bucket := new(mockBucket)
	bucket.On("Upload", "abc.jpg", []byte("jpeg bytes"), mock.MatchedBy(func(md bson.M) bool {
		return md["file_type"] == "image" && md["content_type"] == "image/jpeg"
	})).Return(id, nil)

	ms := NewMediaStorage(nil, bucket, "http://media.local/media")
	res, err := ms.Store(context.Background(), common.MediaFileTypeImage, []byte("jpeg bytes"), "abc.jpg", "image/jpeg")

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "http://media.local/media/"+id.Hex(), res.URL)
	assert.Equal(t, id.Hex(), res.FilePath)
	bucket.AssertExpectations(t)
}

func TestMediaStorage_Store_Refusals(t *testing.T) {
	bucket := new(mockBucket)
	ms := NewMediaStorage(nil, bucket, "")

	res, err := ms.Store(context.Background(), common.MediaFileType("audio"), []byte("x"), "a.mp3", "audio/mpeg")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "unsupported media kind")

	res, err = ms.Store(context.Background(), common.MediaFileTypeVideo, nil, "a.mp4", "video/mp4")
	require.NoError(t, err)
	assert.False(t, res.Success)

	bucket.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaStorage_Store_Fault(t *testing.T) {
	bucket := new(mockBucket)
	bucket.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(primitive.NilObjectID, errors.New("connection reset"))

	ms := NewMediaStorage(nil, bucket, "")
	_, err := ms.Store(context.Background(), common.MediaFileTypeVideo, []byte("mp4"), "a.mp4", "video/mp4")
	assert.ErrorContains(t, err, "connection reset")
}

func TestMediaStorage_Store_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ms := NewMediaStorage(nil, new(mockBucket), "")
	_, err := ms.Store(ctx, common.MediaFileTypeImage, []byte("x"), "a.png", "image/png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMediaStorage_DownloadFile(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.M{"file_type": "video", "content_type": "video/mp4"})
	require.NoError(t, err)
	uploaded := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	bucket := new(mockBucket)
	bucket.On("Open", id).Return(io.NopCloser(bytes.NewReader([]byte("mp4 data"))), &gridfs.File{
		Name:       "abc.mp4",
		Length:     8,
		UploadDate: uploaded,
		Metadata:   raw,
	}, nil)

	ms := NewMediaStorage(nil, bucket, "")
	rc, info, err := ms.DownloadFile(context.Background(), id.Hex())
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "mp4 data", string(body))
	assert.Equal(t, "abc.mp4", info.Filename)
	assert.Equal(t, int64(8), info.Size)
	assert.Equal(t, common.MediaFileTypeVideo, info.FileType)
	assert.Equal(t, "video/mp4", info.ContentType)
	assert.Equal(t, uploaded, info.UploadedAt)
}

func TestMediaStorage_DownloadFile_NotFound(t *testing.T) {
	id := primitive.NewObjectID()
	bucket := new(mockBucket)
	bucket.On("Open", id).Return(nil, nil, ErrFileNotFound)

	ms := NewMediaStorage(nil, bucket, "")

	_, _, err := ms.DownloadFile(context.Background(), id.Hex())
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, _, err = ms.DownloadFile(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestMediaStorage_DeleteFile(t *testing.T) {
	id := primitive.NewObjectID()
	bucket := new(mockBucket)
	bucket.On("Delete", id).Return(nil)

	ms := NewMediaStorage(nil, bucket, "")
	assert.NoError(t, ms.DeleteFile(context.Background(), id.Hex()))
	assert.ErrorIs(t, ms.DeleteFile(context.Background(), "bad"), ErrFileNotFound)
	bucket.AssertExpectations(t)
}

func TestGetStringFromMap(t *testing.T) {
	assert.Equal(t, "", getStringFromMap(nil, "k"))
	assert.Equal(t, "", getStringFromMap(bson.M{"k": 5}, "k"))
	assert.Equal(t, "v", getStringFromMap(bson.M{"k": "v"}, "k"))
}
