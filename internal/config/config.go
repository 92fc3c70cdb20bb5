package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/example/shopfront/internal/domain/catalog"
	"github.com/joho/godotenv"
)

// Config holds everything a running instance needs. Nothing in here is a
// process-wide singleton; each component receives its slice at construction.
type Config struct {
	Addr          string
	PublicBaseURL string

	// DatabaseURL empty selects the in-memory store (dev mode)
	DatabaseURL string

	KafkaBrokers []string
	KafkaTopic   string

	TokenSecret string
	// TokenTTL zero disables token expiry (legacy behavior)
	TokenTTL time.Duration

	// HashSecrets switches credential storage from plaintext equality to
	// bcrypt. Not compatible with records written in plaintext mode.
	HashSecrets bool

	SequencerMode catalog.SequencerMode

	UploadDir string
}

// Load reads configuration from an optional .env file and the environment.
// TOKEN_SECRET is the only required value.
func Load() (*Config, error) {
	// Missing .env is fine; explicit env vars always win
	_ = godotenv.Load()

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		return nil, errors.New("TOKEN_SECRET environment variable is required")
	}

	cfg := &Config{
		Addr:          getEnv("ADDR", ":4000"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:4000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "shopfront-events"),
		TokenSecret:   secret,
		HashSecrets:   getEnv("HASH_SECRETS", "") == "1",
		UploadDir:     getEnv("UPLOAD_DIR", "upload/images"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	switch mode := getEnv("SEQUENCER_MODE", "last-inserted"); mode {
	case "last-inserted":
		cfg.SequencerMode = catalog.ModeLastInserted
	case "max":
		cfg.SequencerMode = catalog.ModeTrueMax
	default:
		return nil, fmt.Errorf("invalid SEQUENCER_MODE %q (want last-inserted or max)", mode)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
