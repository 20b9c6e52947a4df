package post

import (
	"postgate/internal/dbmysql"
	"postgate/internal/paywall"
	"postgate/internal/visibility"
)

func ToVisibilityPost(p dbmysql.Post) visibility.Post {
	return visibility.Post{
		ID:         p.ID,
		OwnerID:    p.UserID,
		Visibility: visibility.Tier(p.Visibility),
		IsDraft:    p.IsDraft,
	}
}

func ToPaymentSetting(s *dbmysql.PostPaymentSetting) *paywall.PaymentSetting {
	if s == nil {
		return nil
	}
	free := s.FreePreviewCount
	if free < 0 {
		free = 0
	}
	return &paywall.PaymentSetting{Enabled: int(s.Enabled), FreePreviewCount: free}
}

func imageURLs(p *dbmysql.Post) []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.ImageURL)
	}
	return urls
}

// mediaOf picks the redaction input matching the post type.
func mediaOf(p *dbmysql.Post) paywall.Media {
	if paywall.PostType(p.Type) == paywall.PostTypeVideo {
		if len(p.Videos) == 0 {
			return nil
		}
		v := p.Videos[0]
		media := &paywall.VideoMedia{VideoURL: v.VideoURL}
		if v.CoverURL != nil {
			media.CoverURL = *v.CoverURL
		}
		return media
	}
	return paywall.ImageMedia(imageURLs(p))
}

func baseView(p *dbmysql.Post) *paywall.PostView {
	return &paywall.PostView{
		ID:         p.ID,
		UserID:     p.UserID,
		Type:       paywall.PostType(p.Type),
		Title:      p.Title,
		Content:    p.Content,
		Visibility: p.Visibility,
	}
}

// detailView is the full, unredacted detail shape.
func detailView(p *dbmysql.Post) *paywall.PostView {
	view := baseView(p)
	view.Images = imageURLs(p)
	view.Attachment = p.Attachment

	if view.Type == paywall.PostTypeVideo {
		view.Videos = make([]paywall.SubVideo, 0, len(p.Videos))
		for i := range p.Videos {
			v := p.Videos[i]
			url := v.VideoURL
			view.Videos = append(view.Videos, paywall.SubVideo{VideoURL: &url, CoverURL: v.CoverURL})
		}
		if len(p.Videos) > 0 {
			url := p.Videos[0].VideoURL
			view.VideoURL = &url
			if cover := p.Videos[0].CoverURL; cover != nil {
				c := *cover
				view.Image = &c
				if len(view.Images) == 0 {
					view.Images = []string{c}
				}
			}
		}
	} else if len(view.Images) > 0 {
		first := view.Images[0]
		view.Image = &first
	}
	return view
}
