package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DirectusConfig guarda o acesso ao armazém de dados externo.
type DirectusConfig struct {
	BaseURL string
	Token   string
}

// ServerConfig guarda a configuração do servidor HTTP.
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// JWTConfig guarda a configuração dos tokens de sessão.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// LogConfig guarda a configuração de log.
type LogConfig struct {
	Level string
}

// Config reúne toda a configuração da aplicação. Nenhum pacote lê variáveis
// de ambiente por conta própria: tudo passa por aqui e é injetado nos
// construtores.
type Config struct {
	Directus DirectusConfig
	Server   ServerConfig
	JWT      JWTConfig
	Log      LogConfig
}

// Load carrega a configuração do ambiente. Um arquivo .env é opcional.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Directus: DirectusConfig{
			BaseURL: strings.TrimRight(os.Getenv("DIRECTUS_BASE_URL"), "/"),
			Token:   os.Getenv("DIRECTUS_TOKEN"),
		},
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("APP_ENV", "development"),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		JWT: JWTConfig{
			Secret:          os.Getenv("JWT_SECRET"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if cfg.Directus.BaseURL == "" {
		return nil, fmt.Errorf("DIRECTUS_BASE_URL não definida")
	}
	if cfg.Directus.Token == "" {
		return nil, fmt.Errorf("DIRECTUS_TOKEN não definida")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET não definida")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
