package wire

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"postgate/internal/access"
	"postgate/internal/common"
	"postgate/internal/config"
	"postgate/internal/dbmongo"
	"postgate/internal/dbmysql"
	"postgate/internal/media"
	"postgate/internal/paywall"
	"postgate/internal/post"
	"postgate/internal/relationship"
	"postgate/internal/transcode"
	"postgate/internal/upload"
	"postgate/internal/visibility"
)

// APIApp is everything cmd/api serves.
type APIApp struct {
	Config  *config.Config
	Logger  *slog.Logger
	Tokens  *common.TokenManager
	Posts   *post.Handler
	Uploads *upload.Handler
}

type AccessApp struct {
	Config *config.Config
	Logger *slog.Logger
	Tokens *common.TokenManager
	Server *access.Server
}

type MediaApp struct {
	Config *config.Config
	Logger *slog.Logger
	Server *media.HTTPServer
}

func ProvideDatabase(cfg *config.Config, log *slog.Logger) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func ProvideMongo(cfg *config.Config, log *slog.Logger) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(ctx); err != nil {
			log.Warn("mongodb disconnect failed", slog.Any("error", err))
		}
	}
	return client, cleanup, nil
}

func ProvideMediaStorage(cfg *config.Config, log *slog.Logger, client *dbmongo.MongoClient) *dbmongo.MediaStorage {
	return dbmongo.NewMediaStorage(log, dbmongo.NewGridBucket(client.GridFS), cfg.Server.MediaBaseURL)
}

func ProvideOracle(log *slog.Logger, follows relationship.FollowRepository) visibility.RelationshipOracle {
	return relationship.NewOracle(log, follows)
}

func ProvidePostLookup(repo post.Repository) visibility.PostLookup {
	return repo
}

func ProvideRedactor(cfg *config.Config) *paywall.Redactor {
	return paywall.NewRedactor(cfg.PaidContent.ContentPreviewLength)
}

func ProvideTranscoder(cfg *config.Config, log *slog.Logger) transcode.Service {
	return transcode.NewFFmpeg(log, cfg)
}
