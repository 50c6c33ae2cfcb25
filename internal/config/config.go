package config

import (
	"os"
)

// Config holds all runtime settings. Every field comes from the environment
// (a .env file is loaded by main before Load runs).
type Config struct {
	ListenAddr    string
	APIBaseURL    string
	SessionDBPath string
	TemplateDir   string
	StaticDir     string
	SecureCookie  bool
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() Config {
	return Config{
		ListenAddr:    getenv("LISTEN_ADDR", ":"+getenv("PORT", "8080")),
		APIBaseURL:    getenv("API_BASE_URL", "http://127.0.0.1:8000/api"),
		SessionDBPath: getenv("SESSION_DB_PATH", "sessions.db"),
		TemplateDir:   getenv("TEMPLATE_DIR", "web/templates"),
		StaticDir:     getenv("STATIC_DIR", "web/static"),
		SecureCookie:  os.Getenv("SECURE_COOKIE") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
