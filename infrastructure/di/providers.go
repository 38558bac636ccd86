// Package di wires the application's dependencies.
package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/application/services"
	"github.com/deepak445566/socialmedia/infrastructure/config"
	"github.com/deepak445566/socialmedia/infrastructure/media"
	"github.com/deepak445566/socialmedia/infrastructure/persistence/dynamodb"
	"github.com/deepak445566/socialmedia/infrastructure/render"
	"github.com/deepak445566/socialmedia/interfaces/http/rest"
	"github.com/deepak445566/socialmedia/interfaces/http/rest/handlers"
	"github.com/deepak445566/socialmedia/pkg/auth"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideS3Client creates an S3 client
func ProvideS3Client(awsCfg aws.Config) *awss3.Client {
	return awss3.NewFromConfig(awsCfg)
}

// ProvideTokenService creates the session token service
func ProvideTokenService(cfg *config.Config) (*auth.TokenService, error) {
	return auth.NewTokenService(auth.TokenConfig{
		SecretKey:  cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		ExpiryTime: cfg.TokenTTL,
	})
}

// ProvideErrorHandler creates the shared HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.Environment != "production")
}

// ProvideAccountRepository creates the account repository
func ProvideAccountRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.AccountRepository {
	return dynamodb.NewAccountRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideProfileRepository creates the profile repository
func ProvideProfileRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProfileRepository {
	return dynamodb.NewProfileRepository(client, cfg.DynamoDBTable, logger)
}

// ProvidePostRepository creates the post repository
func ProvidePostRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.PostRepository {
	return dynamodb.NewPostRepository(client, cfg.DynamoDBTable, cfg.GSI1Name, cfg.GSI2Name, logger)
}

// ProvideCommentRepository creates the comment repository
func ProvideCommentRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.CommentRepository {
	return dynamodb.NewCommentRepository(client, cfg.DynamoDBTable, cfg.GSI1Name, logger)
}

// ProvideConnectionRepository creates the follow-edge repository
func ProvideConnectionRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ConnectionRepository {
	return dynamodb.NewConnectionRepository(client, cfg.DynamoDBTable, cfg.GSI1Name, logger)
}

// ProvideMediaStore creates the S3-backed media store
func ProvideMediaStore(client *awss3.Client, cfg *config.Config, logger *zap.Logger) ports.MediaStore {
	return media.NewS3Store(client, cfg.MediaBucket, cfg.MediaBaseURL, logger)
}

// ProvideProfileRenderer creates the render service client
func ProvideProfileRenderer(cfg *config.Config, logger *zap.Logger) ports.ProfileRenderer {
	return render.NewClient(cfg.RenderServiceURL, logger)
}

// ProvideAccountService creates the account service
func ProvideAccountService(
	accounts ports.AccountRepository,
	profiles ports.ProfileRepository,
	mediaStore ports.MediaStore,
	tokens *auth.TokenService,
	logger *zap.Logger,
) *services.AccountService {
	return services.NewAccountService(accounts, profiles, mediaStore, tokens, logger)
}

// ProvideProfileService creates the profile service
func ProvideProfileService(
	profiles ports.ProfileRepository,
	accounts ports.AccountRepository,
	renderer ports.ProfileRenderer,
	logger *zap.Logger,
) *services.ProfileService {
	return services.NewProfileService(profiles, accounts, renderer, logger)
}

// ProvideConnectionService creates the connection service
func ProvideConnectionService(
	connections ports.ConnectionRepository,
	accounts ports.AccountRepository,
	logger *zap.Logger,
) *services.ConnectionService {
	return services.NewConnectionService(connections, accounts, logger)
}

// ProvidePostService creates the post service
func ProvidePostService(
	posts ports.PostRepository,
	accounts ports.AccountRepository,
	mediaStore ports.MediaStore,
	logger *zap.Logger,
) *services.PostService {
	return services.NewPostService(posts, accounts, mediaStore, logger)
}

// ProvideCommentService creates the comment service
func ProvideCommentService(
	comments ports.CommentRepository,
	posts ports.PostRepository,
	accounts ports.AccountRepository,
	logger *zap.Logger,
) *services.CommentService {
	return services.NewCommentService(comments, posts, accounts, logger)
}

// ProvideUserHandler creates the user handler
func ProvideUserHandler(
	accounts *services.AccountService,
	tokens *auth.TokenService,
	errorHandler *pkgerrors.ErrorHandler,
	cfg *config.Config,
	logger *zap.Logger,
) *handlers.UserHandler {
	return handlers.NewUserHandler(accounts, tokens, errorHandler, cfg.Environment == "production", logger)
}

// ProvideProfileHandler creates the profile handler
func ProvideProfileHandler(
	profiles *services.ProfileService,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *handlers.ProfileHandler {
	return handlers.NewProfileHandler(profiles, errorHandler, logger)
}

// ProvideConnectionHandler creates the connection handler
func ProvideConnectionHandler(
	connections *services.ConnectionService,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *handlers.ConnectionHandler {
	return handlers.NewConnectionHandler(connections, errorHandler, logger)
}

// ProvidePostHandler creates the post handler
func ProvidePostHandler(
	posts *services.PostService,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *handlers.PostHandler {
	return handlers.NewPostHandler(posts, errorHandler, logger)
}

// ProvideCommentHandler creates the comment handler
func ProvideCommentHandler(
	comments *services.CommentService,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *handlers.CommentHandler {
	return handlers.NewCommentHandler(comments, errorHandler, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	users *handlers.UserHandler,
	profiles *handlers.ProfileHandler,
	connections *handlers.ConnectionHandler,
	posts *handlers.PostHandler,
	comments *handlers.CommentHandler,
	tokens *auth.TokenService,
	cfg *config.Config,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(users, profiles, connections, posts, comments, tokens, cfg.EnableCORS, logger)
}
