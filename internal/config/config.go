package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrSecretGenerated means a JWT secret was just written to the env file
// and the process should be restarted to pick it up.
var ErrSecretGenerated = errors.New("JWT_SECRET was missing; a new secret has been saved to the env file, please restart")

type Config struct {
	DatabaseURL string
	AppName     string
	Debug       bool
	JWTSecret   string
	ServerPort  int
	ServerHost  string
	RulesFile   string
	SessionFile string
	TickPeriod  time.Duration
}

// Addr is the host:port the API server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path.
func LoadFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("[INFO] No %s file found, reading from environment", envFile)
	}

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", "sqlite3://blockfall.db"),
		AppName:     getEnv("APP_NAME", "BlockFall"),
		Debug:       getEnvAsBool("DEBUG", false),
		ServerPort:  getEnvAsInt("SERVER_PORT", 8080),
		ServerHost:  getEnv("SERVER_HOST", "localhost"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RulesFile:   getEnv("RULES_FILE", "games/blockfall/blockfall.lua"),
		SessionFile: getEnv("SESSION_FILE", ".blockfall_session"),
		TickPeriod:  time.Duration(getEnvAsInt("TICK_MS", 50)) * time.Millisecond,
	}

	if cfg.TickPeriod <= 0 {
		return nil, fmt.Errorf("TICK_MS must be positive, got %s", os.Getenv("TICK_MS"))
	}

	if cfg.JWTSecret == "" {
		if err := writeSecret(envFile); err != nil {
			return nil, err
		}
		return nil, ErrSecretGenerated
	}

	return cfg, nil
}

// writeSecret appends a fresh random JWT_SECRET line to envFile.
func writeSecret(envFile string) error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate a new JWT key: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(key)

	f, err := os.OpenFile(envFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("JWT_SECRET is not set and %s could not be written (%w); add JWT_SECRET=%s to it", envFile, err, encoded)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\nJWT_SECRET=%s\n", encoded); err != nil {
		return fmt.Errorf("JWT_SECRET is not set and writing %s failed (%w); add JWT_SECRET=%s to it", envFile, err, encoded)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
