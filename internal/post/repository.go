package post

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"postgate/internal/dbmysql"
	"postgate/internal/visibility"
)

type Repository interface {
	// GetPost loads only the gating fields.
	GetPost(ctx context.Context, postID uint64) (visibility.Post, error)
	// LoadPost loads a post with images, videos and payment setting.
	LoadPost(ctx context.Context, postID uint64) (*dbmysql.Post, error)
	// ListPosts returns the SQL-stage candidates for viewerID, newest first.
	ListPosts(ctx context.Context, viewerID uint64, offset, limit int) ([]dbmysql.Post, error)
	HasPurchased(ctx context.Context, postID, userID uint64) (bool, error)
	PurchasedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &postRepository{db: db}
}

func (r *postRepository) GetPost(ctx context.Context, postID uint64) (visibility.Post, error) {
	var row dbmysql.Post
	err := r.db.WithContext(ctx).
		Select("id, user_id, visibility, is_draft").
		Where("id = ?", postID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return visibility.Post{}, fmt.Errorf("post %d: %w", postID, visibility.ErrPostNotFound)
		}
		return visibility.Post{}, fmt.Errorf("failed to get post %d: %w", postID, err)
	}
	return ToVisibilityPost(row), nil
}

func (r *postRepository) LoadPost(ctx context.Context, postID uint64) (*dbmysql.Post, error) {
	var row dbmysql.Post
	err := r.withMedia(r.db.WithContext(ctx)).
		Where("id = ?", postID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d: %w", postID, visibility.ErrPostNotFound)
		}
		return nil, fmt.Errorf("failed to load post %d: %w", postID, err)
	}
	return &row, nil
}

func (r *postRepository) ListPosts(ctx context.Context, viewerID uint64, offset, limit int) ([]dbmysql.Post, error) {
	var rows []dbmysql.Post
	err := r.withMedia(r.db.WithContext(ctx)).
		Scopes(visibility.Scope(viewerID, "")).
		Where("is_draft = ?", false).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return rows, nil
}

func (r *postRepository) withMedia(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("PaymentSetting")
}

func (r *postRepository) HasPurchased(ctx context.Context, postID, userID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.PostPurchase{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	return n > 0, nil
}

func (r *postRepository) PurchasedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]bool, error) {
	out := make(map[uint64]bool)
	if userID == 0 || len(postIDs) == 0 {
		return out, nil
	}

	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.PostPurchase{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
