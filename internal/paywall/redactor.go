package paywall

import "unicode/utf8"

const (
	DefaultContentPreviewLength = 100
	ellipsis                    = "..."
)

type ListOptions struct {
	Setting      *PaymentSetting
	IsAuthor     bool
	HasPurchased bool
	// Media must be ImageMedia for standard posts and *VideoMedia (or nil) for video posts.
	Media Media
}

type DetailOptions struct {
	FreePreviewCount int
}

// Redactor rewrites post views in place.
type Redactor struct {
	previewLength int
}

func NewRedactor(previewLength int) *Redactor {
	if previewLength <= 0 {
		previewLength = DefaultContentPreviewLength
	}
	return &Redactor{previewLength: previewLength}
}

func (r *Redactor) PreviewLength() int {
	return r.previewLength
}

// RedactForList fills the media fields of a feed item and hides what a
// non-buyer may not see.
func (r *Redactor) RedactForList(post *PostView, opts ListOptions) {
	paid := IsPaid(opts.Setting)
	protect := ShouldProtect(opts.Setting, opts.IsAuthor, opts.HasPurchased)
	freeCount := FreePreviewCount(opts.Setting)

	if post.Type == PostTypeVideo {
		video, _ := opts.Media.(*VideoMedia)
		post.Images = []string{}
		post.Image = nil
		post.VideoURL = nil
		if video != nil {
			if video.CoverURL != "" {
				post.Images = []string{video.CoverURL}
				post.Image = strPtr(video.CoverURL)
			}
			if !protect && video.VideoURL != "" {
				post.VideoURL = strPtr(video.VideoURL)
			}
		}
	} else {
		var images []string
		if m, ok := opts.Media.(ImageMedia); ok {
			images = append(images, m...)
		}
		if images == nil {
			images = []string{}
		}
		if protect && len(images) > freeCount {
			images = images[:freeCount]
		}
		post.Images = images
		post.Image = nil
		if len(images) > 0 {
			post.Image = strPtr(images[0])
		}
	}

	post.IsPaidContent = paid
}

// RedactForDetail is applied to a full post only when the viewer must not
// see the paid content.
func (r *Redactor) RedactForDetail(post *PostView, opts DetailOptions) {
	free := opts.FreePreviewCount
	if free < 0 {
		free = 0
	}
	if len(post.Images) > free {
		post.Images = post.Images[:free]
	}

	if post.Type == PostTypeVideo {
		post.VideoURL = nil
		for i := range post.Videos {
			post.Videos[i].VideoURL = nil
		}
	} else if len(post.Images) > 0 {
		first := post.Images[0]
		post.Image = &first
	} else {
		post.Image = nil
	}

	post.Attachment = nil

	if utf8.RuneCountInString(post.Content) > r.previewLength {
		post.Content = TruncateRunes(post.Content, r.previewLength)
		post.ContentTruncated = true
	}
}

// TruncateRunes cuts text to max code points and appends "..." when
// anything was removed.
func TruncateRunes(text string, max int) string {
	if max < 0 {
		max = 0
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}

	n := 0
	for i := range text {
		if n == max {
			return text[:i] + ellipsis
		}
		n++
	}
	return text
}

func strPtr(s string) *string {
	return &s
}
