// Package api describes the netreduce.v1.ReduceService gRPC service. The
// service exchanges protobuf well-known types only, so no generated
// message code is needed.
package api

import (
	"context"

	"github.com/golang/protobuf/ptypes/empty"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "netreduce.v1.ReduceService"

const (
	ReduceService_Reduce_FullMethodName         = "/" + ServiceName + "/Reduce"
	ReduceService_AddToList_FullMethodName      = "/" + ServiceName + "/AddToList"
	ReduceService_RemoveFromList_FullMethodName = "/" + ServiceName + "/RemoveFromList"
	ReduceService_GetList_FullMethodName        = "/" + ServiceName + "/GetList"
)

// ReduceServiceServer is the server API for ReduceService.
type ReduceServiceServer interface {
	// Reduce reduces an ad hoc list of prefix lines.
	Reduce(context.Context, *structpb.ListValue) (*structpb.Struct, error)
	// AddToList appends prefixes to a named list.
	AddToList(context.Context, *structpb.Struct) (*empty.Empty, error)
	// RemoveFromList removes prefixes from a named list by value.
	RemoveFromList(context.Context, *structpb.Struct) (*empty.Empty, error)
	// GetList returns the reduced form of a named list.
	GetList(context.Context, *wrappers.StringValue) (*structpb.ListValue, error)
	mustEmbedUnimplementedReduceServiceServer()
}

// UnimplementedReduceServiceServer must be embedded by implementations.
type UnimplementedReduceServiceServer struct{}

func (UnimplementedReduceServiceServer) Reduce(context.Context, *structpb.ListValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Reduce not implemented")
}

func (UnimplementedReduceServiceServer) AddToList(context.Context, *structpb.Struct) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddToList not implemented")
}

func (UnimplementedReduceServiceServer) RemoveFromList(context.Context, *structpb.Struct) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveFromList not implemented")
}

func (UnimplementedReduceServiceServer) GetList(context.Context, *wrappers.StringValue) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetList not implemented")
}

func (UnimplementedReduceServiceServer) mustEmbedUnimplementedReduceServiceServer() {}

func RegisterReduceServiceServer(s grpc.ServiceRegistrar, srv ReduceServiceServer) {
	s.RegisterService(&ReduceService_ServiceDesc, srv)
}

func reduceHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReduceServiceServer).Reduce(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReduceService_Reduce_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReduceServiceServer).Reduce(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

func addToListHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReduceServiceServer).AddToList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReduceService_AddToList_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReduceServiceServer).AddToList(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func removeFromListHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReduceServiceServer).RemoveFromList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReduceService_RemoveFromList_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReduceServiceServer).RemoveFromList(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getListHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrappers.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReduceServiceServer).GetList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReduceService_GetList_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReduceServiceServer).GetList(ctx, req.(*wrappers.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var ReduceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReduceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Reduce", Handler: reduceHandler},
		{MethodName: "AddToList", Handler: addToListHandler},
		{MethodName: "RemoveFromList", Handler: removeFromListHandler},
		{MethodName: "GetList", Handler: getListHandler},
	},
	Streams: []grpc.StreamDesc{},
}

// ReduceServiceClient is the client API for ReduceService.
type ReduceServiceClient interface {
	Reduce(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddToList(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error)
	RemoveFromList(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error)
	GetList(ctx context.Context, in *wrappers.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type reduceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReduceServiceClient(cc grpc.ClientConnInterface) ReduceServiceClient {
	return &reduceServiceClient{cc: cc}
}

func (c *reduceServiceClient) Reduce(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ReduceService_Reduce_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reduceServiceClient) AddToList(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error) {
	out := new(empty.Empty)
	if err := c.cc.Invoke(ctx, ReduceService_AddToList_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reduceServiceClient) RemoveFromList(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error) {
	out := new(empty.Empty)
	if err := c.cc.Invoke(ctx, ReduceService_RemoveFromList_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reduceServiceClient) GetList(ctx context.Context, in *wrappers.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ReduceService_GetList_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
