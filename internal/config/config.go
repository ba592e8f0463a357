package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Cfg struct {
	App        App
	Database   Database
	Logger     Logger
	Vendor     Vendor
	OpenAI     OpenAI
	Migrations Migrations
}

// App настройки HTTP-фасада мониторинга (опционален).
type App struct {
	Host        string
	Port        string
	HTTPEnabled bool
}

// Database настройки PostgreSQL для журнала аудита.
// Пустой Host означает, что аудит в БД отключен.
type Database struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type Migrations struct {
	Path string
}

type Logger struct {
	Env   string
	Level string
}

// Vendor настройки HTTP-клиента API вендора.
type Vendor struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// OpenAI настройки LLM-клиента демонстрационного агента.
// BaseURL позволяет указать OpenAI-совместимый сервер (например Ollama).
type OpenAI struct {
	KeyAI           string
	BaseURL         string
	Model           string
	MaxTokens       int
	AllowPlaceOrder bool // отдавать ли модели инструмент place_order
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	cfg := &Cfg{
		App: App{
			Host:        env("APP_HOST", "127.0.0.1"),
			Port:        env("APP_PORT", "8090"),
			HTTPEnabled: envBool("HTTP_ENABLED"),
		},
		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     env("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
		},
		Logger: Logger{
			Env:   env("ENV", "dev"),
			Level: env("LOG_LEVEL", "info"),
		},
		Vendor: Vendor{
			BaseURL:   env("VENDOR_BASE_URL", "https://order.dominos.com"),
			UserAgent: env("VENDOR_USER_AGENT", "mcpizza/1.0"),
			Timeout:   time.Duration(envInt("VENDOR_TIMEOUT_SEC", 30)) * time.Second,
		},
		OpenAI: OpenAI{
			KeyAI:           os.Getenv("OPENAI_API_KEY"),
			BaseURL:         os.Getenv("OPENAI_BASE_URL"),
			Model:           env("OPENAI_MODEL", "gpt-4o"),
			MaxTokens:       envInt("OPENAI_MAX_TOKENS", 4000),
			AllowPlaceOrder: envBool("AGENT_ALLOW_PLACE_ORDER"),
		},
		Migrations: Migrations{
			Path: env("MIGRATIONS_PATH", "file://migrations"),
		},
	}

	return cfg, nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "true" || v == "1" || v == "yes"
}
