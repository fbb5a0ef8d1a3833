// Package config loads the settings shared by both Lambda functions.
//
// Values are resolved in increasing priority:
//
//	defaults -> YAML file -> .env file -> process environment
//
// A missing YAML or .env file is not an error.
package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pmatra/Lambda-How-to-send-SMS/constants"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	LogLevel  string    `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	LogFormat string    `yaml:"log_format" envconfig:"LOG_FORMAT" validate:"required,oneof=text json"`
	Messaging Messaging `yaml:"messaging" validate:"-"`
}

// Messaging configures the Pinpoint client used by the SMS responder.
type Messaging struct {
	ApplicationID string `yaml:"application_id" envconfig:"PINPOINT_APPLICATION_ID" validate:"required"`
	Region        string `yaml:"region" envconfig:"AWS_REGION"`
	// EndpointURL overrides the service endpoint, e.g. for LocalStack.
	EndpointURL string `yaml:"endpoint_url" envconfig:"AWS_ENDPOINT_URL" validate:"omitempty,url"`
}

var validate = validator.New()

func Path() string {
	if path := os.Getenv(constants.ConfigFileEnv); path != "" {
		return path
	}
	return constants.DefaultConfigFile
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		LogLevel:  constants.DefaultLogLevel,
		LogFormat: constants.DefaultLogFormat,
	}

	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: reading .env: %w", ErrInvalidConfig, err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

func (m Messaging) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: messaging: %w", ErrInvalidConfig, err)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrInvalidConfig, path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfig, path, err)
	}

	return nil
}
