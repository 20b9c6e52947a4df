package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postgate/internal/wire"
)

func main() {
	app, cleanup, err := wire.InitializeMedia()
	if err != nil {
		log.Fatalf("Failed to initialize media server: %v", err)
	}
	defer cleanup()

	addr := ":" + app.Config.Server.MediaServicePort
	srv := &http.Server{
		Addr:        addr,
		Handler:     app.Server,
		ReadTimeout: time.Duration(app.Config.Server.ReadTimeout) * time.Second,
	}

	go func() {
		app.Logger.Info("media server listening", slog.String("addr", addr), slog.String("base_url", app.Config.Server.MediaBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		app.Logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
