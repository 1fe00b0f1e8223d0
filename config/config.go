// File: /config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	SiteBaseURL string
	MapboxToken string

	// Default map center used when the visitor denies geolocation (Budapest)
	DefaultCenterLat float64
	DefaultCenterLng float64

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// Web Push (VAPID) Configuration
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubject    string
}

func Load() *Config {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=programlaz port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		SiteBaseURL: getEnv("SITE_BASE_URL", "https://programlaz.hu"),
		MapboxToken: getEnv("MAPBOX_TOKEN", ""),

		DefaultCenterLat: getEnvFloat("DEFAULT_CENTER_LAT", 47.4979),
		DefaultCenterLng: getEnvFloat("DEFAULT_CENTER_LNG", 19.0402),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "hirlevel@programlaz.hu"),
		FromName:     getEnv("FROM_NAME", "Programláz"),

		// Push settings
		VAPIDPublicKey:  getEnv("VAPID_PUBLIC_KEY", ""),
		VAPIDPrivateKey: getEnv("VAPID_PRIVATE_KEY", ""),
		VAPIDSubject:    getEnv("VAPID_SUBJECT", "mailto:hirlevel@programlaz.hu"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
