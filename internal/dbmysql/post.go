package dbmysql

import "time"

type Post struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Title      string    `gorm:"column:title;size:200" json:"title"`
	Content    string    `gorm:"column:content;type:text" json:"content"`
	Type       int8      `gorm:"column:type;not null;default:1" json:"type"`                   // 1 standard, 2 video
	Visibility int8      `gorm:"column:visibility;not null;default:0;index" json:"visibility"` // 0 public, 1 private, 2 mutual friends
	IsDraft    bool      `gorm:"column:is_draft;not null;default:false" json:"is_draft"`
	Attachment *string   `gorm:"column:attachment;size:500" json:"attachment"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Images         []PostImage         `gorm:"foreignKey:PostID" json:"images,omitempty"`
	Videos         []PostVideo         `gorm:"foreignKey:PostID" json:"videos,omitempty"`
	PaymentSetting *PostPaymentSetting `gorm:"foreignKey:PostID" json:"payment_setting,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

type PostImage struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID   uint64 `gorm:"column:post_id;not null;index" json:"post_id"`
	ImageURL string `gorm:"column:image_url;size:500;not null" json:"image_url"`
	Position int    `gorm:"column:position;not null;default:0" json:"position"`
}

func (PostImage) TableName() string {
	return "post_images"
}

type PostVideo struct {
	ID       uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID   uint64  `gorm:"column:post_id;not null;index" json:"post_id"`
	VideoURL string  `gorm:"column:video_url;size:500;not null" json:"video_url"`
	CoverURL *string `gorm:"column:cover_url;size:500" json:"cover_url"`
	MPDPath  *string `gorm:"column:mpd_path;size:500" json:"mpd_path"`
}

func (PostVideo) TableName() string {
	return "post_videos"
}
