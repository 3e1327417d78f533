package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Addr        string
	DBPath      string
	SessionsDir string
	HTMLDir     string
	StaticDir   string
}

// Load reads configuration from the environment, honoring a .env file in
// the working directory when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:        getenv("INKWELL_ADDR", ":8080"),
		DBPath:      getenv("INKWELL_DB", "data/inkwell.db"),
		SessionsDir: getenv("INKWELL_SESSIONS_DIR", "data/sessions"),
		HTMLDir:     getenv("INKWELL_HTML_DIR", "app/views"),
		StaticDir:   getenv("INKWELL_STATIC_DIR", "static"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
