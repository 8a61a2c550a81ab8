package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	JWTExpiration time.Duration
	ServerPort    string

	// Leave policy knobs. The defaults match the documented rules:
	// 3 calendar days of advance notice, 2 paid leaves per month.
	LeaveAdvanceDays      int
	LeaveMonthlyPaidQuota int
}

func Load() *Config {
	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:           getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/staffhub"),
		JWTSecret:             getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration:         time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		LeaveAdvanceDays:      getEnvInt("LEAVE_ADVANCE_DAYS", 3),
		LeaveMonthlyPaidQuota: getEnvInt("LEAVE_MONTHLY_PAID_QUOTA", 2),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
