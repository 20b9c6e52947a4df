//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"postgate/internal/access"
	"postgate/internal/common"
	"postgate/internal/config"
	"postgate/internal/dbmongo"
	"postgate/internal/dbmysql"
	"postgate/internal/logger"
	"postgate/internal/media"
	"postgate/internal/post"
	"postgate/internal/relationship"
	"postgate/internal/upload"
	"postgate/internal/visibility"
)

var baseSet = wire.NewSet(
	config.LoadConfig,
	logger.New,
	common.NewTokenManager,
)

var gatingSet = wire.NewSet(
	ProvideDatabase,
	relationship.NewFollowRepository,
	ProvideOracle,
	post.NewRepository,
	ProvidePostLookup,
	visibility.NewPolicy,
	visibility.NewBatchFilter,
)

func InitializeAPI() (*APIApp, func(), error) {
	wire.Build(
		baseSet,
		gatingSet,
		ProvideRedactor,
		post.NewService,
		wire.Bind(new(post.Usecase), new(*post.Service)),
		post.NewHandler,
		ProvideMongo,
		ProvideMediaStorage,
		wire.Bind(new(upload.Store), new(*dbmongo.MediaStorage)),
		dbmysql.NewMediaRefRepository,
		ProvideTranscoder,
		upload.NewService,
		wire.Bind(new(upload.Usecase), new(*upload.Service)),
		upload.NewHandler,
		wire.Struct(new(APIApp), "*"),
	)
	return nil, nil, nil
}

func InitializeAccess() (*AccessApp, func(), error) {
	wire.Build(
		baseSet,
		gatingSet,
		wire.Bind(new(access.Decider), new(*visibility.Policy)),
		wire.Bind(new(access.Filterer), new(*visibility.BatchFilter)),
		access.NewServer,
		wire.Struct(new(AccessApp), "*"),
	)
	return nil, nil, nil
}

func InitializeMedia() (*MediaApp, func(), error) {
	wire.Build(
		config.LoadConfig,
		logger.New,
		ProvideMongo,
		ProvideMediaStorage,
		wire.Bind(new(media.Storage), new(*dbmongo.MediaStorage)),
		media.NewHTTPServer,
		wire.Struct(new(MediaApp), "*"),
	)
	return nil, nil, nil
}
