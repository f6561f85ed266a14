package grpcserver

import (
	"context"

	"github.com/ak7sky/net-reduce/internal/grpc/api"
	"github.com/ak7sky/net-reduce/internal/logger"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func loggerInterceptor(logger logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		logger.Info("rpc %s started", info.FullMethod)
		defer logger.Info("rpc %s finished", info.FullMethod)
		logger.Debug("request data: %v", req)
		res, err := handler(ctx, req)
		if err != nil {
			logger.Error("error on rpc %s: %v", info.FullMethod, err)
		}
		return res, err
	}
}

func reqValidatorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		switch info.FullMethod {
		case api.ReduceService_Reduce_FullMethodName:
			lines, ok := api.Strings(req.(*structpb.ListValue))
			if !ok || len(lines) == 0 {
				return nil, status.Errorf(
					codes.InvalidArgument, "invalid request: expected a non-empty list of prefix strings",
				)
			}

		case api.ReduceService_AddToList_FullMethodName,
			api.ReduceService_RemoveFromList_FullMethodName:
			reqMsg := req.(*structpb.Struct)
			prefixes, ok := api.ListPrefixes(reqMsg)
			if api.ListName(reqMsg) == "" || !ok || len(prefixes) == 0 {
				return nil, status.Errorf(
					codes.InvalidArgument, "invalid request: missed required fields (list, prefixes)",
				)
			}

		case api.ReduceService_GetList_FullMethodName:
			if req.(*wrappers.StringValue).GetValue() == "" {
				return nil, status.Errorf(
					codes.InvalidArgument, "invalid request: missed required field (list name)",
				)
			}
		}
		return handler(ctx, req)
	}
}
