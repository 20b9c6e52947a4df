package post

import (
	"context"
	"errors"
	"log/slog"

	"postgate/internal/dbmysql"
	"postgate/internal/paywall"
	"postgate/internal/visibility"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

type Usecase interface {
	ListPosts(ctx context.Context, viewerID uint64, page, limit int) ([]*paywall.PostView, error)
	// GetPost returns a nil view whenever the decision denies access.
	GetPost(ctx context.Context, viewerID, postID uint64) (*paywall.PostView, visibility.AccessDecision, error)
}

// Service composes visibility gating and paywall redaction for reads.
type Service struct {
	repo     Repository
	policy   *visibility.Policy
	filter   *visibility.BatchFilter
	redactor *paywall.Redactor
	logger   *slog.Logger
}

func NewService(log *slog.Logger, repo Repository, policy *visibility.Policy, filter *visibility.BatchFilter, redactor *paywall.Redactor) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:     repo,
		policy:   policy,
		filter:   filter,
		redactor: redactor,
		logger:   log.With(slog.String("service", "post")),
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// ListPosts runs the SQL superset query, then the batch filter, then list redaction.
func (s *Service) ListPosts(ctx context.Context, viewerID uint64, page, limit int) ([]*paywall.PostView, error) {
	page, limit = normalizePage(page, limit)

	rows, err := s.repo.ListPosts(ctx, viewerID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	visible, err := visibility.FilterSlice(ctx, s.filter, rows, viewerID, ToVisibilityPost)
	if err != nil {
		return nil, err
	}

	var paidIDs []uint64
	for i := range visible {
		p := &visible[i]
		if p.UserID != viewerID && paywall.IsPaid(ToPaymentSetting(p.PaymentSetting)) {
			paidIDs = append(paidIDs, p.ID)
		}
	}
	purchased := map[uint64]bool{}
	if viewerID != 0 && len(paidIDs) > 0 {
		bought, err := s.repo.PurchasedPostIDs(ctx, viewerID, paidIDs)
		if err != nil {
			// protected form rather than a failed feed
			s.logger.Warn("purchase lookup failed", slog.Uint64("viewer_id", viewerID), slog.Any("error", err))
		} else {
			purchased = bought
		}
	}

	views := make([]*paywall.PostView, 0, len(visible))
	for i := range visible {
		p := &visible[i]
		view := baseView(p)
		s.redactor.RedactForList(view, paywall.ListOptions{
			Setting:      ToPaymentSetting(p.PaymentSetting),
			IsAuthor:     viewerID != 0 && p.UserID == viewerID,
			HasPurchased: purchased[p.ID],
			Media:        mediaOf(p),
		})
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) GetPost(ctx context.Context, viewerID, postID uint64) (*paywall.PostView, visibility.AccessDecision, error) {
	decision := s.policy.DecidePost(ctx, postID, viewerID)
	if !decision.HasAccess {
		return nil, decision, nil
	}

	row, err := s.repo.LoadPost(ctx, postID)
	if err != nil {
		if errors.Is(err, visibility.ErrPostNotFound) {
			return nil, visibility.AccessDecision{Reason: visibility.ReasonPostNotFound}, nil
		}
		return nil, decision, err
	}

	return s.detail(ctx, row, viewerID), decision, nil
}

// detail redacts paid content unless the viewer wrote or bought the post.
// A failed purchase lookup is treated as not purchased.
func (s *Service) detail(ctx context.Context, row *dbmysql.Post, viewerID uint64) *paywall.PostView {
	setting := ToPaymentSetting(row.PaymentSetting)
	view := detailView(row)
	view.IsPaidContent = paywall.IsPaid(setting)

	isAuthor := viewerID != 0 && row.UserID == viewerID
	if !view.IsPaidContent || isAuthor {
		return view
	}

	purchased, err := s.repo.HasPurchased(ctx, row.ID, viewerID)
	if err != nil {
		s.logger.Warn("purchase lookup failed",
			slog.Uint64("post_id", row.ID),
			slog.Uint64("viewer_id", viewerID),
			slog.Any("error", err))
		purchased = false
	}
	if paywall.ShouldProtect(setting, isAuthor, purchased) {
		s.redactor.RedactForDetail(view, paywall.DetailOptions{FreePreviewCount: paywall.FreePreviewCount(setting)})
	}
	return view
}
