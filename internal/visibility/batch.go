package visibility

import (
	"context"
	"log/slog"
)

// BatchFilter applies the list visibility rules to many posts with at most
// one relationship lookup per distinct author.
type BatchFilter struct {
	oracle RelationshipOracle
	logger *slog.Logger
}

func NewBatchFilter(log *slog.Logger, oracle RelationshipOracle) *BatchFilter {
	if log == nil {
		log = slog.Default()
	}
	return &BatchFilter{
		oracle: oracle,
		logger: log.With(slog.String("service", "visibility_batch")),
	}
}

// Filter returns the posts viewerID may see, in their original order.
func (f *BatchFilter) Filter(ctx context.Context, posts []Post, viewerID uint64) ([]Post, error) {
	return FilterSlice(ctx, f, posts, viewerID, func(p Post) Post { return p })
}

// FilterSlice is Filter for any row type; subject extracts the gating fields.
// On context cancellation nothing is returned but the error.
func FilterSlice[T any](ctx context.Context, f *BatchFilter, items []T, viewerID uint64, subject func(T) Post) ([]T, error) {
	if len(items) == 0 {
		return []T{}, nil
	}

	if viewerID == 0 {
		return keep(items, subject, func(p Post) bool { return p.Visibility == Public }), nil
	}

	owners := make([]uint64, 0)
	seen := make(map[uint64]struct{})
	for _, item := range items {
		p := subject(item)
		if p.Visibility != MutualFriends || p.OwnerID == viewerID {
			continue
		}
		if _, ok := seen[p.OwnerID]; ok {
			continue
		}
		seen[p.OwnerID] = struct{}{}
		owners = append(owners, p.OwnerID)
	}

	if len(owners) == 0 {
		return keep(items, subject, func(p Post) bool {
			return p.OwnerID == viewerID || p.Visibility == Public
		}), nil
	}

	// scoped to this call only
	mutual := make(map[uint64]bool, len(owners))
	for _, ownerID := range owners {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mutual[ownerID] = mutualOrFailClosed(ctx, f.oracle, f.logger, viewerID, ownerID)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return keep(items, subject, func(p Post) bool {
		if p.OwnerID == viewerID {
			return true
		}
		switch p.Visibility {
		case Public:
			return true
		case MutualFriends:
			return mutual[p.OwnerID]
		default:
			return false
		}
	}), nil
}

func keep[T any](items []T, subject func(T) Post, pred func(Post) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(subject(item)) {
			out = append(out, item)
		}
	}
	return out
}
