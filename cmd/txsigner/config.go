package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/erc7824/nitrolite/txsigner/pkg/log"
)

const (
	configDirPathEnv     = "TXSIGNER_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
	privateKeyEnv        = "TXSIGNER_PRIVATE_KEY"
)

// Config is read from the environment, optionally seeded from a .env file
// in $TXSIGNER_CONFIG_DIR_PATH.
type Config struct {
	PrivateKey string `env:"TXSIGNER_PRIVATE_KEY" validate:"omitempty,hexadecimal"`
	Backend    string `env:"TXSIGNER_BACKEND" env-default:"ethereum" validate:"oneof=ethereum decred"`
	Log        log.Config
}

// LoadConfig seeds the environment from an optional .env file, reads Config
// from it and validates the result.
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.WithName("config")

	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	configDotEnvPath := filepath.Join(configDirPath, ".env")
	if err := godotenv.Load(configDotEnvPath); err != nil {
		logger.Debug(".env file not loaded", "path", configDotEnvPath)
	} else {
		logger.Debug("loaded .env file", "path", configDotEnvPath)
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := log.ParseLevel(string(config.Log.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	config.Log.Level = level
	return &config, nil
}
