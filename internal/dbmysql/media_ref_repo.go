package dbmysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type MediaRefRepository interface {
	Create(ctx context.Context, ref *MediaRef) error
}

type mediaRefRepository struct {
	db *gorm.DB
}

func NewMediaRefRepository(db *gorm.DB) MediaRefRepository {
	return &mediaRefRepository{db: db}
}

func (r *mediaRefRepository) Create(ctx context.Context, ref *MediaRef) error {
	if err := r.db.WithContext(ctx).Create(ref).Error; err != nil {
		return fmt.Errorf("failed to record media %s: %w", ref.FileID, err)
	}
	return nil
}
