package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Handle    string         `gorm:"column:handle;uniqueIndex;size:50;not null" json:"handle"`
	Nickname  string         `gorm:"column:nickname;size:100" json:"nickname"`
	Avatar    string         `gorm:"column:avatar;size:500" json:"avatar"`
	Status    string         `gorm:"column:status;type:enum('active','banned','deleted');default:'active'" json:"status"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
