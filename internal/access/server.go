// Package access exposes the visibility rules to other services over gRPC.
package access

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"postgate/internal/common"
	"postgate/internal/visibility"
)

// MaxFilterPosts bounds one FilterPosts request.
const MaxFilterPosts = 500

type Decider interface {
	DecidePost(ctx context.Context, postID uint64, viewerID uint64) visibility.AccessDecision
}

type Filterer interface {
	Filter(ctx context.Context, posts []visibility.Post, viewerID uint64) ([]visibility.Post, error)
}

type Server struct {
	policy Decider
	filter Filterer
	logger *slog.Logger
}

func NewServer(log *slog.Logger, policy Decider, filter Filterer) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		policy: policy,
		filter: filter,
		logger: log.With(slog.String("service", "access")),
	}
}

var _ AccessServiceServer = (*Server)(nil)

// CheckAccess takes {post_id, viewer_id} and answers {has_access, reason}.
func (s *Server) CheckAccess(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	postID, err := uintField(req, "post_id")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if postID == 0 {
		return nil, status.Error(codes.InvalidArgument, "post_id is required")
	}
	viewerID, err := viewer(ctx, req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	decision := s.policy.DecidePost(ctx, postID, viewerID)
	if decision.Reason == visibility.ReasonError {
		return nil, status.Error(codes.Internal, "access check failed")
	}

	return structpb.NewStruct(map[string]interface{}{
		"has_access": decision.HasAccess,
		"reason":     string(decision.Reason),
	})
}

// FilterPosts takes {viewer_id, posts:[{id, user_id, visibility, is_draft}]}
// and answers {post_ids} in request order.
func (s *Server) FilterPosts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	viewerID, err := viewer(ctx, req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	var items []*structpb.Value
	if v, ok := req.GetFields()["posts"]; ok {
		list := v.GetListValue()
		if list == nil {
			return nil, status.Error(codes.InvalidArgument, "posts must be a list")
		}
		items = list.GetValues()
	}
	if len(items) > MaxFilterPosts {
		return nil, status.Errorf(codes.InvalidArgument, "at most %d posts per request", MaxFilterPosts)
	}

	posts := make([]visibility.Post, 0, len(items))
	for i, item := range items {
		p, err := postFromValue(item)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "posts[%d]: %v", i, err)
		}
		// drafts are only ever visible to their owner
		if p.IsDraft && (viewerID == 0 || p.OwnerID != viewerID) {
			continue
		}
		posts = append(posts, p)
	}

	visible, err := s.filter.Filter(ctx, posts, viewerID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, status.FromContextError(err).Err()
		}
		s.logger.Error("filter failed", slog.Any("error", err))
		return nil, status.Error(codes.Internal, "filter failed")
	}

	ids := make([]interface{}, 0, len(visible))
	for _, p := range visible {
		ids = append(ids, idValue(p.ID))
	}
	return structpb.NewStruct(map[string]interface{}{"post_ids": ids})
}

// maxExactID is the largest id a JSON number carries without rounding.
const maxExactID = 1 << 53

// idValue answers ids as numbers while they are exact and as decimal
// strings beyond that, mirroring what uintField accepts.
func idValue(id uint64) interface{} {
	if id > maxExactID {
		return strconv.FormatUint(id, 10)
	}
	return float64(id)
}

// viewer prefers an authenticated caller over the viewer_id field.
func viewer(ctx context.Context, req *structpb.Struct) (uint64, error) {
	if id := common.ViewerFromContext(ctx); id != 0 {
		return id, nil
	}
	return uintField(req, "viewer_id")
}

func postFromValue(v *structpb.Value) (visibility.Post, error) {
	s := v.GetStructValue()
	if s == nil {
		return visibility.Post{}, fmt.Errorf("post must be an object")
	}
	id, err := uintField(s, "id")
	if err != nil {
		return visibility.Post{}, err
	}
	owner, err := uintField(s, "user_id")
	if err != nil {
		return visibility.Post{}, err
	}
	tier, err := uintField(s, "visibility")
	if err != nil {
		return visibility.Post{}, err
	}
	if tier > math.MaxInt8 {
		return visibility.Post{}, fmt.Errorf("visibility %d out of range", tier)
	}
	return visibility.Post{
		ID:         id,
		OwnerID:    owner,
		Visibility: visibility.Tier(tier),
		IsDraft:    s.GetFields()["is_draft"].GetBoolValue(),
	}, nil
}

// uintField reads a non-negative integer that may arrive as a number or,
// for ids beyond float precision, a decimal string. Missing means 0.
func uintField(s *structpb.Struct, key string) (uint64, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, nil
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return 0, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n < 0 || n != math.Trunc(n) || n > maxExactID {
			return 0, fmt.Errorf("%s must be a non-negative integer", key)
		}
		return uint64(n), nil
	case *structpb.Value_StringValue:
		n, err := strconv.ParseUint(kind.StringValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be a non-negative integer", key)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}

// LoggingInterceptor logs every unary call with its duration and status code.
func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := []any{
			slog.String("method", info.FullMethod),
			slog.Duration("duration", time.Since(start)),
			slog.String("code", status.Code(err).String()),
		}
		if err != nil {
			log.Warn("grpc call failed", append(attrs, slog.Any("error", err))...)
		} else {
			log.Info("grpc call", attrs...)
		}
		return resp, err
	}
}
