package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/auth-service-be/internal/api/handlers"
	"github.com/isdelr/auth-service-be/internal/auth"
	"github.com/isdelr/auth-service-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(authService services.AuthServiceProvider, tokens *auth.TokenManager, cookies auth.CookiePolicy, clientURL string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The cookie only works cross-origin with credentials allowed, so the
	// frontend origin must be listed explicitly.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{clientURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(authService, cookies)

	r.Get("/health-check", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("working fine..."))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(tokens))
			r.Get("/me", authHandler.Me)
		})
	})

	return r
}
