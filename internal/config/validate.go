package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation constants define acceptable bounds for configuration values
const (
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	minRaiderIOTimeout = 1 * time.Second
	maxRaiderIOTimeout = 2 * time.Minute
)

// Validate checks the configuration values and returns all failures at
// once via errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if c.GuildsFile == "" {
		errs = append(errs, fmt.Errorf("GUILDS_FILE cannot be empty"))
	}

	if c.CharactersFile == "" {
		errs = append(errs, fmt.Errorf("CHARACTERS_FILE cannot be empty"))
	}

	if err := c.validateRaiderIOTimeout(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func (c *Config) validateRaiderIOTimeout() error {
	if c.RaiderIOTimeout < minRaiderIOTimeout || c.RaiderIOTimeout > maxRaiderIOTimeout {
		return fmt.Errorf(
			"RAIDERIO_TIMEOUT must be between %v and %v, got %v",
			minRaiderIOTimeout, maxRaiderIOTimeout, c.RaiderIOTimeout,
		)
	}

	return nil
}
