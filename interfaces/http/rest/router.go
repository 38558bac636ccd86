// Package rest wires the HTTP routes for the public API.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/interfaces/http/rest/handlers"
	"github.com/deepak445566/socialmedia/interfaces/http/rest/middleware"
	"github.com/deepak445566/socialmedia/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	users       *handlers.UserHandler
	profiles    *handlers.ProfileHandler
	connections *handlers.ConnectionHandler
	posts       *handlers.PostHandler
	comments    *handlers.CommentHandler
	tokens      *auth.TokenService
	corsEnabled bool
	logger      *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	users *handlers.UserHandler,
	profiles *handlers.ProfileHandler,
	connections *handlers.ConnectionHandler,
	posts *handlers.PostHandler,
	comments *handlers.CommentHandler,
	tokens *auth.TokenService,
	corsEnabled bool,
	logger *zap.Logger,
) *Router {
	return &Router{
		users:       users,
		profiles:    profiles,
		connections: connections,
		posts:       posts,
		comments:    comments,
		tokens:      tokens,
		corsEnabled: corsEnabled,
		logger:      logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.corsEnabled {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	authenticate := middleware.Authenticate(rt.tokens)

	router.Route("/api/user", func(r chi.Router) {
		// Public session endpoints
		r.Post("/register", rt.users.Register)
		r.Post("/login", rt.users.Login)

		// Session-protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/isauth", rt.users.IsAuth)
			r.Post("/logout", rt.users.Logout)
			r.Put("/update", rt.users.Update)
			r.Post("/picture", rt.users.UploadPicture)

			r.Get("/profile", rt.profiles.GetMine)
			r.Put("/profile", rt.profiles.Update)
			r.Get("/profiles", rt.profiles.List)
			r.Get("/profile/{userID}", rt.profiles.GetByUserID)
			r.Get("/download-profile", rt.profiles.Download)

			r.Post("/follow", rt.connections.Follow)
			r.Post("/unfollow", rt.connections.Unfollow)
			r.Get("/followers/{userID}", rt.connections.ListFollowers)
			r.Get("/following/{userID}", rt.connections.ListFollowing)
			r.Get("/connection-counts/{userID}", rt.connections.Counts)
			r.Get("/check-following/{userID}", rt.connections.CheckFollowing)
		})
	})

	router.Route("/api/post", func(r chi.Router) {
		// Comment listing is public
		r.Get("/comments", rt.comments.ListByPost)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/postUpload", rt.posts.Upload)
			r.Get("/getAllPosts", rt.posts.ListAll)
			r.Get("/getMyPosts", rt.posts.ListMine)
			r.Delete("/delete", rt.posts.Delete)
			r.Put("/like", rt.posts.ToggleLike)

			r.Post("/comment", rt.comments.Create)
			r.Post("/deletecomment", rt.comments.Delete)
		})
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
