package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/auth-service-be/internal/api"
	"github.com/isdelr/auth-service-be/internal/auth"
	"github.com/isdelr/auth-service-be/internal/config"
	"github.com/isdelr/auth-service-be/internal/database"
	"github.com/isdelr/auth-service-be/internal/logger"
	"github.com/isdelr/auth-service-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration. An empty JWT_SECRET is a startup error, not
	// something to limp along with.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up token signing and the cookie policy. The cookie lifetime is the
	// token validity so the two expire together.
	tokens, err := auth.NewTokenManager([]byte(cfg.JWTSecret), auth.TokenValidity)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize token manager")
	}
	cookies := auth.CookiePolicy{
		Secure: cfg.IsProduction(),
		MaxAge: auth.TokenValidity,
	}

	// Set up services
	userService := services.NewUserService(db)
	authService := services.NewAuthService(userService, tokens)

	// Set up router
	router := api.NewRouter(authService, tokens, cookies, cfg.ClientURL)

	// Set up server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
