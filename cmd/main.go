package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/oyanquantum/oyan/docs"
	"github.com/oyanquantum/oyan/internal/auth"
	"github.com/oyanquantum/oyan/internal/cache"
	"github.com/oyanquantum/oyan/internal/clients/azuretts"
	"github.com/oyanquantum/oyan/internal/clients/gemini"
	"github.com/oyanquantum/oyan/internal/clients/kazllm"
	"github.com/oyanquantum/oyan/internal/config"
	"github.com/oyanquantum/oyan/internal/handlers"
	"github.com/oyanquantum/oyan/internal/logger"
	"github.com/oyanquantum/oyan/internal/middleware"
	"github.com/oyanquantum/oyan/internal/repositories"
	"github.com/oyanquantum/oyan/internal/services"
)

// @title OYAN API
// @version 1.0
// @description Backend for the OYAN Kazakh language learning app

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting OYAN backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Initialize upstream clients. Each one is optional: a missing key
	// disables the feature rather than the whole server.
	var geminiClient gemini.Client
	if cfg.Gemini.APIKey != "" {
		geminiClient = gemini.NewClient(cfg.Gemini)
	} else {
		logger.Logger.Warn("GEMINI_API_KEY is not set, serving bundled lesson content only")
	}

	var kazllmClient kazllm.Client
	if cfg.KazLLM.Token != "" {
		kazllmClient = kazllm.NewClient(cfg.KazLLM)
	} else {
		logger.Logger.Warn("HF_TOKEN is not set, skipping Kazakh grammar correction")
	}

	var ttsClient azuretts.Client
	if cfg.Speech.Key != "" {
		ttsClient = azuretts.NewClient(cfg.Speech)
	} else {
		logger.Logger.Warn("AZURE_SPEECH_KEY is not set, speech synthesis is disabled")
	}

	var contentCache cache.ContentCache
	if cfg.Redis.Addr != "" {
		contentCache, err = cache.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Logger.Warn("Failed to connect to Redis, lesson caching is disabled", zap.Error(err))
			contentCache = nil
		}
	} else {
		logger.Logger.Warn("REDIS_ADDR is not set, lesson caching is disabled")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	chatRepo := repositories.NewChatMessageRepository(db, logger.Logger)
	vocabRepo := repositories.NewVocabularyRepository(db, logger.Logger)
	quizRepo := repositories.NewQuizQuestionRepository(db, logger.Logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenGenerator, logger.Logger)
	contentService := services.NewContentService(geminiClient, kazllmClient, contentCache, logger.Logger)
	chatService := services.NewChatService(chatRepo, userRepo, geminiClient, kazllmClient, cfg.Chat.MessageLimit, logger.Logger)
	progressService := services.NewProgressService(userRepo, logger.Logger)
	vocabularyService := services.NewVocabularyService(vocabRepo, logger.Logger)
	lessonService := services.NewLessonService(userRepo, vocabularyService, progressService, logger.Logger)
	quizService := services.NewQuizService(quizRepo, logger.Logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	profileHandler := handlers.NewProfileHandler(authService, progressService, logger.Logger)
	lessonHandler := handlers.NewLessonHandler(lessonService, contentService, logger.Logger)
	chatHandler := handlers.NewChatHandler(chatService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)
	vocabularyHandler := handlers.NewVocabularyHandler(vocabularyService, logger.Logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger.Logger)

	var speechHandler *handlers.SpeechHandler
	if ttsClient != nil {
		speechHandler = handlers.NewSpeechHandler(services.NewSpeechService(ttsClient, logger.Logger), logger.Logger)
	}

	// Initialize auth middleware
	authMiddleware := auth.Middleware(tokenGenerator)
	apiKeyMiddleware := auth.APIKeyMiddleware(cfg.Admin.APIKey)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler(db))

		// Public auth routes
		authHandler.RegisterRoutes(r)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			profileHandler.RegisterRoutes(r)
			lessonHandler.RegisterRoutes(r)
			chatHandler.RegisterRoutes(r)
			progressHandler.RegisterRoutes(r)
			vocabularyHandler.RegisterRoutes(r)
			quizHandler.RegisterRoutes(r)
			if speechHandler != nil {
				speechHandler.RegisterRoutes(r)
			}
		})

		// Admin routes with API key middleware
		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware)
			quizHandler.RegisterAdminRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// healthHandler reports liveness, including database reachability
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "oyan_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
