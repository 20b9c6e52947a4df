package main

import (
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"postgate/internal/access"
	"postgate/internal/common"
	"postgate/internal/wire"
)

func main() {
	app, cleanup, err := wire.InitializeAccess()
	if err != nil {
		log.Fatalf("Failed to initialize access service: %v", err)
	}
	defer cleanup()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			access.LoggingInterceptor(app.Logger),
			common.AuthInterceptor(app.Tokens),
		),
	)
	access.RegisterAccessServiceServer(grpcServer, app.Server)
	reflection.Register(grpcServer)

	port := app.Config.Server.AccessServicePort
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		app.Logger.Error("listen failed", slog.String("port", port), slog.Any("error", err))
		return
	}

	go func() {
		app.Logger.Info("access service listening", slog.String("port", port))
		if err := grpcServer.Serve(lis); err != nil {
			app.Logger.Error("serve failed", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down access service")
	grpcServer.GracefulStop()
}
