// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Auth     AuthConfig
	Gemini   GeminiConfig
	KazLLM   KazLLMConfig
	Speech   SpeechConfig
	Chat     ChatConfig
	Admin    AdminConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds the content cache connection settings.
// An empty Addr disables caching; lessons are generated on every request.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig holds token signing settings
type AuthConfig struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// GeminiConfig holds settings for the lesson/chat generation backend.
// An empty APIKey disables generation; bundled fallback content is served.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// KazLLMConfig holds settings for the Kazakh text correction pass.
// An empty Token disables the pass; generated text is kept as-is.
type KazLLMConfig struct {
	Token   string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// SpeechConfig holds Azure Speech synthesis settings.
// An empty Key disables the speech endpoint.
type SpeechConfig struct {
	Region  string
	Key     string
	Voice   string
	Timeout time.Duration
}

// ChatConfig holds tutor chat limits
type ChatConfig struct {
	MessageLimit int
}

// AdminConfig holds settings for the admin endpoints.
// An empty APIKey disables them.
type AdminConfig struct {
	APIKey string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Redis configuration (optional)
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		redisDB, err := strconv.Atoi(redisDBStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.Redis.DB = redisDB
	}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		// Parse comma-separated origins
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		// If no valid origins found, default to allow all
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// Auth configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.Auth.JWTSecret = jwtSecret
	cfg.Auth.AccessTokenTTL = 24 * time.Hour
	cfg.Auth.RefreshTokenTTL = 30 * 24 * time.Hour
	if ttlStr := os.Getenv("ACCESS_TOKEN_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
		cfg.Auth.AccessTokenTTL = ttl
	}
	if ttlStr := os.Getenv("REFRESH_TOKEN_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_TOKEN_TTL: %w", err)
		}
		cfg.Auth.RefreshTokenTTL = ttl
	}

	// Content generation configuration (optional; fallback content without it)
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Gemini.BaseURL = os.Getenv("GEMINI_BASE_URL")
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = "https://generativelanguage.googleapis.com"
	}
	cfg.Gemini.Model = os.Getenv("GEMINI_MODEL")
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-1.5-flash"
	}
	cfg.Gemini.Timeout = 90 * time.Second

	// Kazakh correction pass configuration (optional)
	cfg.KazLLM.Token = os.Getenv("HF_TOKEN")
	cfg.KazLLM.BaseURL = os.Getenv("HF_BASE_URL")
	if cfg.KazLLM.BaseURL == "" {
		cfg.KazLLM.BaseURL = "https://api-inference.huggingface.co"
	}
	cfg.KazLLM.Model = os.Getenv("HF_MODEL")
	if cfg.KazLLM.Model == "" {
		cfg.KazLLM.Model = "mistralai/Mistral-7B-Instruct-v0.2"
	}
	cfg.KazLLM.Timeout = 30 * time.Second

	// Speech synthesis configuration (optional)
	cfg.Speech.Key = os.Getenv("AZURE_SPEECH_KEY")
	cfg.Speech.Region = os.Getenv("AZURE_SPEECH_REGION")
	if cfg.Speech.Region == "" {
		cfg.Speech.Region = "eastus"
	}
	cfg.Speech.Voice = os.Getenv("AZURE_SPEECH_VOICE")
	if cfg.Speech.Voice == "" {
		cfg.Speech.Voice = "kk-KZ-AigulNeural"
	}
	cfg.Speech.Timeout = 30 * time.Second

	// Chat configuration
	cfg.Chat.MessageLimit = 3
	if limitStr := os.Getenv("CHAT_MESSAGE_LIMIT"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("invalid CHAT_MESSAGE_LIMIT: %q", limitStr)
		}
		cfg.Chat.MessageLimit = limit
	}

	// Admin configuration
	cfg.Admin.APIKey = os.Getenv("ADMIN_API_KEY")

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}
