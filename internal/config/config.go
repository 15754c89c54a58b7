package config

import "os"

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	RedisAddr  string
	OrderTopic string
}

// FromEnv builds the runtime configuration from environment variables,
// falling back to local development defaults.
func FromEnv() Config {
	return Config{
		Port:       getenv("PORT", "8000"),
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBUser:     getenv("DB_USER", "root"),
		DBPass:     getenv("DB_PASS", ""),
		DBName:     getenv("DB_NAME", "ecommerce"),
		RedisAddr:  getenv("REDIS_ADDR", ""),
		OrderTopic: getenv("ORDER_TOPIC", "order-topic"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
