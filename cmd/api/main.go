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

	"github.com/gorilla/mux"

	"postgate/internal/common"
	"postgate/internal/wire"
)

func main() {
	app, cleanup, err := wire.InitializeAPI()
	if err != nil {
		log.Fatalf("Failed to initialize api: %v", err)
	}
	defer cleanup()

	router := newRouter(app)
	addr := app.Config.Server.Host + ":" + app.Config.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		app.Logger.Info("api listening", slog.String("addr", addr), slog.String("env", app.Config.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down api")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		app.Logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}

func newRouter(app *wire.APIApp) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(common.RequestLogger(app.Logger))
	api.Use(common.OptionalViewer(app.Tokens, app.Logger))

	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "api"})
	}).Methods(http.MethodGet)

	app.Posts.RegisterRoutes(api)
	app.Uploads.RegisterRoutes(api, common.RequireAuth)
	return r
}
