package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/kodydeda4/recipeflow/core"
	"github.com/kodydeda4/recipeflow/logging"
)

// Config captures the fields a recipeflow host reads from its config file.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is json or text.
	LogFormat string
	// SubscriptionBuffer bounds undelivered snapshots per subscriber.
	SubscriptionBuffer int
	// Seed holds recipes loaded into the provider at startup.
	Seed core.Collection
}

const (
	defaultLogLevel           = "info"
	defaultLogFormat          = "json"
	defaultSubscriptionBuffer = 1
)

type rawConfig struct {
	LogLevel           string      `toml:"log_level"`
	LogFormat          string      `toml:"log_format"`
	SubscriptionBuffer int         `toml:"subscription_buffer"`
	Recipes            []rawRecipe `toml:"recipes"`
}

type rawRecipe struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Load parses the config file at path, falling back to defaults when the
// file is missing. Seed recipes without an id are assigned a fresh one;
// duplicate ids are rejected.
func Load(path string) (Config, error) {
	cfg := Config{
		LogLevel:           defaultLogLevel,
		LogFormat:          defaultLogFormat,
		SubscriptionBuffer: defaultSubscriptionBuffer,
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	if format := strings.TrimSpace(raw.LogFormat); format != "" {
		cfg.LogFormat = format
	}
	if raw.SubscriptionBuffer > 0 {
		cfg.SubscriptionBuffer = raw.SubscriptionBuffer
	}

	seed := make([]core.Recipe, 0, len(raw.Recipes))
	for _, r := range raw.Recipes {
		id := core.RecipeID(strings.TrimSpace(r.ID))
		if id == "" {
			id = core.NewRecipeID()
		}
		seed = append(seed, core.Recipe{ID: id, Name: strings.TrimSpace(r.Name)})
	}
	collection, err := core.NewCollection(seed...)
	if err != nil {
		return Config{}, fmt.Errorf("seed recipes: %w", err)
	}
	cfg.Seed = collection

	return cfg, nil
}

// LoggerConfig translates the file settings into a logging configuration.
func (c Config) LoggerConfig() *logging.LoggerConfig {
	lc := logging.DefaultLoggerConfig()
	lc.Level = logging.ParseLevel(c.LogLevel)
	if c.LogFormat != "" {
		lc.Format = c.LogFormat
	}
	return lc
}
