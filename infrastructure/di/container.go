package di

import (
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/application/services"
	"github.com/deepak445566/socialmedia/infrastructure/config"
	"github.com/deepak445566/socialmedia/interfaces/http/rest"
	"github.com/deepak445566/socialmedia/pkg/auth"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *zap.Logger
	TokenService      *auth.TokenService
	ErrorHandler      *pkgerrors.ErrorHandler
	AccountRepo       ports.AccountRepository
	ProfileRepo       ports.ProfileRepository
	PostRepo          ports.PostRepository
	CommentRepo       ports.CommentRepository
	ConnectionRepo    ports.ConnectionRepository
	MediaStore        ports.MediaStore
	ProfileRenderer   ports.ProfileRenderer
	AccountService    *services.AccountService
	ProfileService    *services.ProfileService
	ConnectionService *services.ConnectionService
	PostService       *services.PostService
	CommentService    *services.CommentService
	Router            *rest.Router
}
