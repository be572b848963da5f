package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Token           string
	GuildsFile      string
	CharactersFile  string
	RaiderIOTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := readSecret("discord_token")
	if token == "" {
		token = os.Getenv("DISCORD_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set (via secret or env var)")
	}

	cfg := &Config{
		Token:           token,
		GuildsFile:      envString("GUILDS_FILE", "guilds.json"),
		CharactersFile:  envString("CHARACTERS_FILE", "personagens.json"),
		RaiderIOTimeout: envDuration("RAIDERIO_TIMEOUT", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
