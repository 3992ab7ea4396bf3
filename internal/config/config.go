// Package config holds the startup configuration surface. All credentials
// are read once at startup and passed explicitly into constructors, so that
// nothing downstream needs to reach into the process environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/joho/godotenv"
)

const (
	defaultModel         = "gpt-4o-mini"
	defaultMaxArgRetries = 3
)

type Config struct {
	// StoreURL is the base URL of the customers REST data service
	StoreURL string
	// StoreKey is the access key sent on every data service request
	StoreKey string
	// OpenAIKey authenticates against the chat completions endpoint
	OpenAIKey string
	// Model is the chat model identifier
	Model string
	// MaxArgRetries bounds how many malformed tool calls are re-prompted
	// within a single turn before the failure is surfaced to the user
	MaxArgRetries int
	Debug         bool
}

// Load the configuration from a .env file, if one exists, and the process
// environment. Missing required values error here, at startup, rather than
// on first use.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			ancli.Warnf("failed to load .env file: %v\n", err)
		}
	}

	conf := Config{
		StoreURL:      os.Getenv("STORE_URL"),
		StoreKey:      os.Getenv("STORE_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		Model:         os.Getenv("MODEL"),
		MaxArgRetries: defaultMaxArgRetries,
		Debug:         misc.Truthy(os.Getenv("DEBUG")),
	}
	if conf.Model == "" {
		conf.Model = defaultModel
	}
	if v := os.Getenv("MAX_ARG_RETRIES"); v != "" {
		retries, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse MAX_ARG_RETRIES '%v': %w", v, err)
		}
		if retries < 0 {
			return Config{}, fmt.Errorf("MAX_ARG_RETRIES must not be negative, got: %v", retries)
		}
		conf.MaxArgRetries = retries
	}

	if err := conf.validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func (c Config) validate() error {
	missing := make([]string, 0)
	if c.StoreURL == "" {
		missing = append(missing, "STORE_URL")
	}
	if c.StoreKey == "" {
		missing = append(missing, "STORE_KEY")
	}
	if c.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}
