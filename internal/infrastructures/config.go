package infrastructures

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	PORT                 string
	AEGIS_API_BASE_URL   string
	AEGIS_SESSION_COOKIE string
	DATABASE_URL         string
	REDIS_ADDRESS        string
	REDIS_PASSWORD       string
	OPERATOR_KEYS        []string
	ALLOW_ORIGINS        string
}

var Config *AppConfig

func LoadConfig() *AppConfig {
	godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var operatorKeys []string
	if raw := os.Getenv("OPERATOR_KEYS"); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(key); trimmed != "" {
				operatorKeys = append(operatorKeys, trimmed)
			}
		}
	}

	Config = &AppConfig{
		PORT:                 port,
		AEGIS_API_BASE_URL:   os.Getenv("AEGIS_API_BASE_URL"),
		AEGIS_SESSION_COOKIE: os.Getenv("AEGIS_SESSION_COOKIE"),
		DATABASE_URL:         os.Getenv("DATABASE_URL"),
		REDIS_ADDRESS:        os.Getenv("REDIS_ADDRESS"),
		REDIS_PASSWORD:       os.Getenv("REDIS_PASSWORD"),
		OPERATOR_KEYS:        operatorKeys,
		ALLOW_ORIGINS:        os.Getenv("ALLOW_ORIGINS"),
	}

	return Config
}
