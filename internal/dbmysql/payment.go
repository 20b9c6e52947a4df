package dbmysql

import "time"

// PostPaymentSetting is absent for free posts. Enabled is 1 when the paywall is on.
type PostPaymentSetting struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID           uint64    `gorm:"column:post_id;not null;uniqueIndex" json:"post_id"`
	Enabled          int8      `gorm:"column:enabled;not null;default:0" json:"enabled"`
	FreePreviewCount int       `gorm:"column:free_preview_count;not null;default:0" json:"free_preview_count"`
	Price            int64     `gorm:"column:price;not null;default:0" json:"price"` // cents
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PostPaymentSetting) TableName() string {
	return "post_payment_settings"
}

type PostPurchase struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:idx_purchase_pair" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_purchase_pair" json:"user_id"`
	Amount    int64     `gorm:"column:amount;not null" json:"amount"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PostPurchase) TableName() string {
	return "post_purchases"
}
