package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment defaults of the command line flags.
type Config struct {
	ParserCmd string `envconfig:"CADETE_PARSER_CMD"`
	ParserURL string `envconfig:"CADETE_PARSER_URL"`
	DocPath   string `envconfig:"CADETE_DOC_PATH"`
	Format    string `envconfig:"CADETE_FORMAT" default:"text"`
	LogLevel  string `envconfig:"CADETE_LOGLEVEL" default:"WARN"`

	RedisURL string        `envconfig:"CADETE_REDIS_URL"`
	CacheTTL time.Duration `envconfig:"CADETE_CACHE_TTL" default:"24h"`
}

// loadConfig reads the environment, after loading a .env file of the working
// directory if there is one. Variables already set are not overridden.
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
