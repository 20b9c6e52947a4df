package paywall

// PostType discriminates image posts from video posts.
type PostType int8

const (
	PostTypeStandard PostType = 1
	PostTypeVideo    PostType = 2
)

// Media is either ImageMedia or *VideoMedia.
type Media interface {
	isMedia()
}

// ImageMedia is the ordered image list of a standard post.
type ImageMedia []string

func (ImageMedia) isMedia() {}

// VideoMedia is the primary video of a video post. An empty CoverURL means no cover.
type VideoMedia struct {
	VideoURL string
	CoverURL string
}

func (*VideoMedia) isMedia() {}

// SubVideo is one entry of a detail view's video list.
type SubVideo struct {
	VideoURL *string `json:"video_url"`
	CoverURL *string `json:"cover_url"`
}

// PostView is the client-facing shape of a post after redaction.
type PostView struct {
	ID         uint64   `json:"id"`
	UserID     uint64   `json:"user_id"`
	Type       PostType `json:"type"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Visibility int8     `json:"visibility"`

	Images     []string   `json:"images"`
	Image      *string    `json:"image"`
	VideoURL   *string    `json:"video_url"`
	Videos     []SubVideo `json:"videos,omitempty"`
	Attachment *string    `json:"attachment"`

	IsPaidContent    bool `json:"isPaidContent"`
	ContentTruncated bool `json:"contentTruncated,omitempty"`
}
