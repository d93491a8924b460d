package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is the full environment-driven configuration, read once at startup
// and passed explicitly to whatever needs it.
type Config struct {
	ServerPort string
	GinMode    string

	// Backend selects the repository implementation: "mysql" or "memory".
	Backend string

	DBHost     string
	DBPort     string
	DBDatabase string
	DBUsername string
	DBPassword string

	JWTSecret      string
	JWTExpireHours int

	// AdminEmails is the login allowlist; empty means no allowlist.
	AdminEmails []string
	// AdminEmail/AdminPassword seed the initial admin account at boot.
	AdminEmail    string
	AdminPassword string

	GitHubToken     string
	GitHubRepoOwner string
	GitHubRepoName  string

	SMTPHost          string
	SMTPPort          int
	SMTPUser          string
	SMTPPass          string
	SMTPFrom          string
	SMTPSkipTLSVerify bool

	AllowedOrigins []string
}

// Load reads the configuration from environment variables.
func Load() Config {
	cfg := Config{
		ServerPort: envOr("SERVER_PORT", "8080"),
		GinMode:    os.Getenv("GIN_MODE"),
		Backend:    envOr("DB_BACKEND", "mysql"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOr("DB_PORT", "3306"),
		DBDatabase: os.Getenv("DB_DATABASE"),
		DBUsername: os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpireHours: envInt("JWT_EXPIRE_HOURS", 24),

		AdminEmails:   splitList(os.Getenv("ADMIN_EMAILS")),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		GitHubToken:     os.Getenv("GITHUB_TOKEN"),
		GitHubRepoOwner: envOr("GITHUB_REPO_OWNER", "diabeatz96"),
		GitHubRepoName:  envOr("GITHUB_REPO_NAME", "student-showcase"),

		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          envInt("SMTP_PORT", 587),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		SMTPSkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",

		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
