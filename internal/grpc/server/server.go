package grpcserver

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/ak7sky/net-reduce/internal/core"
	"github.com/ak7sky/net-reduce/internal/grpc/api"
	"github.com/ak7sky/net-reduce/internal/logger"
	"google.golang.org/grpc"
)

type AppServer struct {
	server          *grpc.Server
	logger          logger.Logger
	errCh           chan error
	listenAddr      string
	shutdownTimeout time.Duration
	addr            net.Addr
}

// Start listens on listenAddr and serves ReduceService in the background.
// Listen and serve failures are reported on ErrCh.
func Start(listSrv core.PrefixListService, logger logger.Logger, listenAddr string, shutdownTimeout time.Duration) *AppServer {
	appServer := &AppServer{
		server:          newGRPCServer(listSrv, logger),
		logger:          logger,
		errCh:           make(chan error, 1),
		listenAddr:      listenAddr,
		shutdownTimeout: shutdownTimeout,
	}
	appServer.start()
	return appServer
}

func newGRPCServer(listSrv core.PrefixListService, logger logger.Logger) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			loggerInterceptor(logger),
			reqValidatorInterceptor(),
		),
	)
	api.RegisterReduceServiceServer(grpcServer, newHandler(listSrv))
	return grpcServer
}

func (appServer *AppServer) start() {
	listener, err := net.Listen("tcp", appServer.listenAddr)
	if err != nil {
		appServer.errCh <- err
		close(appServer.errCh)
		return
	}
	appServer.addr = listener.Addr()

	appServer.logger.Info("starting server on %s", listener.Addr().String())

	go func() {
		err := appServer.server.Serve(listener)
		// Shutdown may win the race with Serve.
		if errors.Is(err, grpc.ErrServerStopped) {
			err = nil
		}
		appServer.errCh <- err
		close(appServer.errCh)
	}()
}

// Addr returns the bound address, nil if listening failed.
func (appServer *AppServer) Addr() net.Addr {
	return appServer.addr
}

func (appServer *AppServer) ErrCh() <-chan error {
	return appServer.errCh
}

func (appServer *AppServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), appServer.shutdownTimeout)
	defer cancel()
	return shutdown(ctx, appServer.server)
}

func shutdown(ctx context.Context, server *grpc.Server) error {
	gracefulStopDone := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(gracefulStopDone)
	}()

	select {
	case <-gracefulStopDone:
		return nil
	case <-ctx.Done():
		server.Stop()
		return ctx.Err()
	}
}
