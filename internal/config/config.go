package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr      string
	GinMode         string
	StaticDir       string
	SiteBaseURL     string
	SiteTitle       string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := envOr("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	shutdownTimeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			shutdownTimeout = parsed
		}
	}

	logFormat := strings.ToLower(envOr("LOG_FORMAT", "json"))
	if logFormat != "json" && logFormat != "text" {
		logFormat = "json"
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		GinMode:         envOr("GIN_MODE", "release"),
		StaticDir:       envOr("STATIC_DIR", "web/static"),
		SiteBaseURL:     envOr("SITE_BASE_URL", "https://colombiamoda.com"),
		SiteTitle:       envOr("SITE_TITLE", "Colombiamoda"),
		LogLevel:        strings.ToLower(envOr("LOG_LEVEL", "info")),
		LogFormat:       logFormat,
		ShutdownTimeout: shutdownTimeout,
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
