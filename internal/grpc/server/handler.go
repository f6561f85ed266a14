package grpcserver

import (
	"context"

	"github.com/ak7sky/net-reduce/internal/core"
	"github.com/ak7sky/net-reduce/internal/core/service"
	"github.com/ak7sky/net-reduce/internal/grpc/api"
	"github.com/golang/protobuf/ptypes/empty"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var errNotStrings = status.Error(codes.InvalidArgument, "invalid request: prefixes must be strings")

type serverHandler struct {
	api.UnimplementedReduceServiceServer
	listSrv core.PrefixListService
}

func newHandler(listSrv core.PrefixListService) *serverHandler {
	return &serverHandler{listSrv: listSrv}
}

func (s *serverHandler) Reduce(_ context.Context, lines *structpb.ListValue) (*structpb.Struct, error) {
	values, ok := api.Strings(lines)
	if !ok {
		return nil, errNotStrings
	}
	kept, skipped, err := s.listSrv.Reduce(values)
	if err != nil {
		return nil, errResponse(err)
	}
	return api.NewReduceResponse(kept, skipped), nil
}

func (s *serverHandler) AddToList(_ context.Context, req *structpb.Struct) (*empty.Empty, error) {
	prefixes, ok := api.ListPrefixes(req)
	if !ok {
		return nil, errNotStrings
	}
	err := s.listSrv.AddToList(api.ListName(req), prefixes)
	return &empty.Empty{}, errResponse(err)
}

func (s *serverHandler) RemoveFromList(_ context.Context, req *structpb.Struct) (*empty.Empty, error) {
	prefixes, ok := api.ListPrefixes(req)
	if !ok {
		return nil, errNotStrings
	}
	err := s.listSrv.RemoveFromList(api.ListName(req), prefixes)
	return &empty.Empty{}, errResponse(err)
}

func (s *serverHandler) GetList(_ context.Context, name *wrappers.StringValue) (*structpb.ListValue, error) {
	list, err := s.listSrv.ReducedList(name.GetValue())
	if err != nil {
		return nil, errResponse(err)
	}
	return api.NewStringList(list), nil
}

func errResponse(errSrv error) error {
	switch {
	case errSrv == nil:
		return nil
	case service.IsMalformed(errSrv):
		return status.Error(codes.InvalidArgument, errSrv.Error())
	default:
		return status.Error(codes.Internal, errSrv.Error())
	}
}
