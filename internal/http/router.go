package http

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/clothesshop/client-api/internal/article"
	"github.com/clothesshop/client-api/internal/auth"
	"github.com/clothesshop/client-api/internal/config"
	"github.com/clothesshop/client-api/internal/httputil"
	"github.com/clothesshop/client-api/internal/logging"
	"github.com/clothesshop/client-api/internal/notification"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	cfg *config.Config,
	authHandler *auth.Handler,
	authMiddleware *auth.Middleware,
	articleHandler *article.Handler,
	notificationHandler *notification.Handler,
	logger *logging.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)               // Security headers on all responses
	r.Use(middleware.Recoverer)          // Recover from panics
	r.Use(middleware.RequestID)          // Add request ID
	r.Use(middleware.RealIP)             // Set RemoteAddr to real IP
	r.Use(logging.RequestLogger(logger)) // Structured logging with request context
	r.Use(middleware.Compress(5))        // Compress responses

	// Public routes
	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	// Production builds will not have this route at all
	if cfg.Server.IsDevelopment() {
		log.Println("Swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/client", func(r chi.Router) {
		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Article reads are public
		r.Get("/articles", articleHandler.List)
		r.Get("/articles/{id}", articleHandler.Get)
		r.Get("/articles/{id}/comments", articleHandler.ListComments)

		// Guarded routes (require a valid bearer token)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)

			r.Post("/articles", articleHandler.Create)
			r.Put("/articles/{id}", articleHandler.Update)
			r.Delete("/articles/{id}", articleHandler.Delete)
			r.Put("/articles/{id}/like", articleHandler.ToggleLike)
			r.Post("/articles/{id}/comments", articleHandler.CreateComment)
			r.Delete("/comments/{id}", articleHandler.DeleteComment)

			r.Get("/notifications", notificationHandler.List)
			r.Patch("/notifications/read/{id}", notificationHandler.MarkAsRead)
		})
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
