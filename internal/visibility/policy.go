package visibility

import (
	"context"
	"errors"
	"log/slog"
)

var ErrPostNotFound = errors.New("post not found")

// RelationshipOracle answers whether two users follow each other.
type RelationshipOracle interface {
	AreMutualFriends(ctx context.Context, userA, userB uint64) (bool, error)
}

// PostLookup loads the gating fields of a post. Implementations return
// ErrPostNotFound (possibly wrapped) when the post does not exist.
type PostLookup interface {
	GetPost(ctx context.Context, postID uint64) (Post, error)
}

// Policy decides single-post access.
type Policy struct {
	oracle RelationshipOracle
	posts  PostLookup
	logger *slog.Logger
}

func NewPolicy(log *slog.Logger, oracle RelationshipOracle, posts PostLookup) *Policy {
	if log == nil {
		log = slog.Default()
	}
	return &Policy{
		oracle: oracle,
		posts:  posts,
		logger: log.With(slog.String("service", "visibility")),
	}
}

// Decide applies the rules in order: draft, ownership, then tier.
// The oracle is only consulted for MUTUAL_FRIENDS posts seen by a signed-in non-owner.
func (p *Policy) Decide(ctx context.Context, post Post, viewerID uint64) AccessDecision {
	if post.IsDraft {
		if post.ownedBy(viewerID) {
			return grant(ReasonAuthor)
		}
		return deny(ReasonDraftOnlyAuthor)
	}

	if post.ownedBy(viewerID) {
		return grant(ReasonAuthor)
	}

	switch post.Visibility {
	case Public:
		return grant(ReasonPublic)
	case Private:
		return deny(ReasonPrivate)
	case MutualFriends:
		if viewerID == 0 {
			return deny(ReasonLoginRequired)
		}
		if mutualOrFailClosed(ctx, p.oracle, p.logger, viewerID, post.OwnerID) {
			return grant(ReasonMutualFriends)
		}
		return deny(ReasonNotMutualFriends)
	default:
		return deny(ReasonUnknownVisibility)
	}
}

// DecidePost loads the post first. A missing post is POST_NOT_FOUND, any other
// lookup failure is ERROR; neither is returned to the caller as an error.
func (p *Policy) DecidePost(ctx context.Context, postID uint64, viewerID uint64) AccessDecision {
	if p.posts == nil {
		p.logger.Error("post lookup not configured")
		return deny(ReasonError)
	}

	post, err := p.posts.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return deny(ReasonPostNotFound)
		}
		p.logger.Error("post lookup failed", slog.Uint64("post_id", postID), slog.Any("error", err))
		return deny(ReasonError)
	}
	return p.Decide(ctx, post, viewerID)
}

func mutualOrFailClosed(ctx context.Context, oracle RelationshipOracle, log *slog.Logger, viewerID, ownerID uint64) bool {
	if oracle == nil {
		log.Error("relationship oracle not configured")
		return false
	}
	mutual, err := oracle.AreMutualFriends(ctx, viewerID, ownerID)
	if err != nil {
		log.Warn("mutual follow check failed, treating as not mutual",
			slog.Uint64("viewer_id", viewerID),
			slog.Uint64("owner_id", ownerID),
			slog.Any("error", err))
		return false
	}
	return mutual
}
