package dbmysql

import "time"

// Follow is one directed edge: FollowerID follows FollowingID.
type Follow struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:idx_follow_pair;index" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
