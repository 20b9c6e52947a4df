package post

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"postgate/internal/visibility"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

func TestPostRepository_GetPost(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		want      visibility.Post
		wantErr   error
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, visibility, is_draft FROM `posts` WHERE id = ?")).
					WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "visibility", "is_draft"}).AddRow(7, 3, 2, false))
			},
			want: visibility.Post{ID: 7, OwnerID: 3, Visibility: visibility.MutualFriends},
		},
		{
			name: "not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, visibility, is_draft FROM `posts` WHERE id = ?")).
					WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "visibility", "is_draft"}))
			},
			wantErr: visibility.ErrPostNotFound,
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id")).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			tt.mockSetup(mock)

			got, err := NewRepository(db).GetPost(context.Background(), 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_ListPosts(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE .*user_id = \\? OR visibility IN \\(\\?, \\?\\).* AND is_draft = \\? ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "type", "visibility", "is_draft", "attachment", "created_at", "updated_at"}).
			AddRow(1, 3, "t", "c", 1, 0, false, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `post_images` WHERE `post_images`.`post_id` = ? ORDER BY position ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "image_url", "position"}).
			AddRow(11, 1, "b.jpg", 1).
			AddRow(10, 1, "a.jpg", 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `post_videos` WHERE `post_videos`.`post_id` = ? ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "video_url", "cover_url", "mpd_path"}).
			AddRow(20, 1, "main.mp4", nil, nil).
			AddRow(21, 1, "extra.mp4", nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `post_payment_settings` WHERE `post_payment_settings`.`post_id` = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "enabled", "free_preview_count", "price", "updated_at"}).
			AddRow(1, 1, 1, 2, 500, now))

	rows, err := NewRepository(db).ListPosts(context.Background(), 3, 0, 20)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Images, 2)
	require.Len(t, rows[0].Videos, 2)
	assert.Equal(t, "main.mp4", rows[0].Videos[0].VideoURL)
	require.NotNil(t, rows[0].PaymentSetting)
	assert.Equal(t, int8(1), rows[0].PaymentSetting.Enabled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_HasPurchased(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `post_purchases` WHERE post_id = ? AND user_id = ?")).
		WithArgs(uint64(7), uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	repo := NewRepository(db)
	ok, err := repo.HasPurchased(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	// anonymous viewers never hit the database
	ok, err = repo.HasPurchased(context.Background(), 7, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_PurchasedPostIDs(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `post_id` FROM `post_purchases` WHERE user_id = ? AND post_id IN (?,?)")).
		WithArgs(uint64(3), uint64(7), uint64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(8))

	got, err := NewRepository(db).PurchasedPostIDs(context.Background(), 3, []uint64{7, 8})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]bool{8: true}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
