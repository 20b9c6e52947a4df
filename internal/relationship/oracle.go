// Package relationship answers whether two users follow each other.
package relationship

import (
	"context"
	"log/slog"
)

// MutualOracle is satisfied by Oracle and consumed by the visibility package.
type MutualOracle interface {
	AreMutualFriends(ctx context.Context, a, b uint64) (bool, error)
}

// Oracle re-reads the follow edges on every call. Nothing is cached.
type Oracle struct {
	follows FollowRepository
	logger  *slog.Logger
}

func NewOracle(log *slog.Logger, follows FollowRepository) *Oracle {
	if log == nil {
		log = slog.Default()
	}
	return &Oracle{
		follows: follows,
		logger:  log.With(slog.String("service", "relationship")),
	}
}

// AreMutualFriends is true iff a follows b and b follows a. Anonymous ids are never mutual.
func (o *Oracle) AreMutualFriends(ctx context.Context, a, b uint64) (bool, error) {
	if a == 0 || b == 0 {
		return false, nil
	}

	aFollowsB, bFollowsA, err := o.follows.GetMutualFollowCounts(ctx, a, b)
	if err != nil {
		o.logger.Error("mutual follow lookup failed", slog.Uint64("user_a", a), slog.Uint64("user_b", b), slog.Any("error", err))
		return false, err
	}
	return aFollowsB > 0 && bFollowsA > 0, nil
}
