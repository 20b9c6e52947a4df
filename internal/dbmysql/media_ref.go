package dbmysql

import (
	"gorm.io/gorm"
)

// MediaRef records an uploaded object and where it is served from.
type MediaRef struct {
	FileID      string `gorm:"size:64;uniqueIndex" json:"file_id"` // GridFS ObjectID or content hash
	Kind        string `gorm:"size:20" json:"kind"`                // image, video, cover
	FileName    string `gorm:"size:255" json:"file_name"`
	ContentType string `gorm:"size:100" json:"content_type"`
	URL         string `gorm:"size:500" json:"url"`
	Size        int64  `json:"size"`
	UploadedBy  uint64 `gorm:"index" json:"uploaded_by"`
	gorm.Model
}

func (MediaRef) TableName() string {
	return "media_refs"
}
