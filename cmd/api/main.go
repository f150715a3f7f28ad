package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	_ "github.com/clothesshop/client-api/docs" // swagger docs
	"github.com/clothesshop/client-api/internal/article"
	"github.com/clothesshop/client-api/internal/auth"
	"github.com/clothesshop/client-api/internal/config"
	"github.com/clothesshop/client-api/internal/database"
	"github.com/clothesshop/client-api/internal/dispatch"
	httpServer "github.com/clothesshop/client-api/internal/http"
	"github.com/clothesshop/client-api/internal/logging"
	"github.com/clothesshop/client-api/internal/notification"
	"github.com/clothesshop/client-api/internal/ratelimit"
	"github.com/clothesshop/client-api/internal/user"
)

// @title           Clothes Shop Client API
// @version         1.0
// @description     Clothes shop backend for client applications: articles, comments, likes, and notifications behind bearer-token auth.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	db, err := initDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Initialize Redis connection
	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := user.NewRepository(db)
	articleRepo := article.NewRepository(db)
	notificationRepo := notification.NewRepository(db)

	// Initialize rate limiter and article cache
	rateLimiter := ratelimit.NewLimiter(redisClient)
	articleCache := article.NewCache(redisClient)

	// Initialize token service (jwt or paseto, per config)
	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Initialize services
	authService := auth.NewService(userRepo, tokenService, cfg.Auth.TokenDuration)
	articleService := article.NewService(articleRepo, articleCache, notificationRepo, logger)

	// Register notification query/command handlers
	dispatcher := dispatch.New()
	notification.RegisterHandlers(dispatcher, notificationRepo)

	// Initialize HTTP handlers
	authHandler := auth.NewHandler(authService, rateLimiter)
	authMiddleware := auth.NewMiddleware(tokenService, userRepo, cfg.Auth.LookupTimeout)
	articleHandler := article.NewHandler(articleService)
	notificationHandler := notification.NewHandler(dispatcher)

	// Initialize router
	router := httpServer.NewRouter(cfg, authHandler, authMiddleware, articleHandler, notificationHandler, logger)

	// Initialize HTTP server
	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initDB initializes the database connection and returns a Bun DB instance
func initDB(cfg config.DatabaseConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return database.NewBunDB(sqlDB), nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Verify connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
