package relationship

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// FollowRepository reads the directed follows(follower_id, following_id) edges.
type FollowRepository interface {
	// GetMutualFollowCounts returns how many a→b and b→a edges exist, in one round trip.
	GetMutualFollowCounts(ctx context.Context, a, b uint64) (aFollowsB, bFollowsA int64, err error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

const mutualFollowCountsQuery = `SELECT
	(SELECT COUNT(*) FROM follows WHERE follower_id = ? AND following_id = ?) AS a_follows_b,
	(SELECT COUNT(*) FROM follows WHERE follower_id = ? AND following_id = ?) AS b_follows_a`

type followCounts struct {
	AFollowsB int64 `gorm:"column:a_follows_b"`
	BFollowsA int64 `gorm:"column:b_follows_a"`
}

func (r *followRepository) GetMutualFollowCounts(ctx context.Context, a, b uint64) (int64, int64, error) {
	var row followCounts
	if err := r.db.WithContext(ctx).Raw(mutualFollowCountsQuery, a, b, b, a).Scan(&row).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count follows between %d and %d: %w", a, b, err)
	}
	return row.AFollowsB, row.BFollowsA, nil
}
