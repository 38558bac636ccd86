//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"github.com/deepak445566/socialmedia/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideS3Client,
	ProvideTokenService,
	ProvideErrorHandler,
	ProvideAccountRepository,
	ProvideProfileRepository,
	ProvidePostRepository,
	ProvideCommentRepository,
	ProvideConnectionRepository,
	ProvideMediaStore,
	ProvideProfileRenderer,
	ProvideAccountService,
	ProvideProfileService,
	ProvideConnectionService,
	ProvidePostService,
	ProvideCommentService,
	ProvideUserHandler,
	ProvideProfileHandler,
	ProvideConnectionHandler,
	ProvidePostHandler,
	ProvideCommentHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
