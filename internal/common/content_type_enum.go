package common

import "strings"

// MediaFileType is the kind of an uploaded object.
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeVideo MediaFileType = "video"
	MediaFileTypeCover MediaFileType = "cover"
)

func (mft MediaFileType) String() string {
	return string(mft)
}

func (mft MediaFileType) IsValid() bool {
	switch mft {
	case MediaFileTypeImage, MediaFileTypeVideo, MediaFileTypeCover:
		return true
	}
	return false
}

// DetectFileType maps a MIME type to image or video. Anything else is unknown.
func DetectFileType(mimeType string) (MediaFileType, bool) {
	lower := strings.ToLower(strings.TrimSpace(mimeType))
	if strings.HasPrefix(lower, "image/") {
		return MediaFileTypeImage, true
	}
	if strings.HasPrefix(lower, "video/") {
		return MediaFileTypeVideo, true
	}
	return "", false
}
