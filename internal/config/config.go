package config

import (
	"os"
)

type Config struct {
	Port            string
	LogEnv          string
	DatabaseURL     string
	JWTSecret       string
	StripeSecretKey string
	AllowOrigins    string
	Email           struct {
		ResendAPIKey string
		FromAddress  string
		FromName     string
	}
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "5000")
	cfg.LogEnv = getEnv("LOG_ENV", "development")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.AllowOrigins = getEnv("ALLOW_ORIGINS", "http://localhost:5173")

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
