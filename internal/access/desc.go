package access

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "postgate.access.v1.AccessService"

	checkAccessMethod = "/" + ServiceName + "/CheckAccess"
	filterPostsMethod = "/" + ServiceName + "/FilterPosts"
)

// AccessServiceServer is implemented by Server. Requests and replies are
// google.protobuf.Struct so other services need no generated stubs.
type AccessServiceServer interface {
	CheckAccess(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FilterPosts(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterAccessServiceServer(s grpc.ServiceRegistrar, srv AccessServiceServer) {
	s.RegisterService(&AccessService_ServiceDesc, srv)
}

func unaryHandler(method string, call func(AccessServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccessServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(AccessServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var AccessService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccessServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CheckAccess",
			Handler:    unaryHandler(checkAccessMethod, AccessServiceServer.CheckAccess),
		},
		{
			MethodName: "FilterPosts",
			Handler:    unaryHandler(filterPostsMethod, AccessServiceServer.FilterPosts),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "postgate/access/v1/access.proto",
}

type AccessServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccessServiceClient(cc grpc.ClientConnInterface) *AccessServiceClient {
	return &AccessServiceClient{cc: cc}
}

func (c *AccessServiceClient) CheckAccess(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, checkAccessMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccessServiceClient) FilterPosts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, filterPostsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
