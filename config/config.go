// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package config provides configuration management for the smart-house
// library: logging and report rendering settings. Houses and devices are
// never described by configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/soothill/smart-house/home"
	apperrors "github.com/soothill/smart-house/pkg/errors"
	"github.com/soothill/smart-house/pkg/logger"
	"github.com/soothill/smart-house/pkg/util"
)

const (
	defaultLogLevel  = "info"
	defaultRoomOrder = "name"
)

// Config represents the library configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `yaml:"level" validate:"required,oneof=debug info warn warning error fatal panic"`
}

// ReportConfig holds report rendering settings
type ReportConfig struct {
	RoomOrder string `yaml:"room_order" validate:"required,oneof=name insertion"`
}

// Default returns a configuration with every field set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file and applies environment variable overrides
func Load(path string) (*Config, error) {
	data, err := util.ReadFileSafely(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides and defaults
	cfg.applyEnvironmentOverrides()
	cfg.setDefaults()

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvironmentOverrides applies environment variable overrides to the configuration
func (c *Config) applyEnvironmentOverrides() {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if order := os.Getenv("REPORT_ROOM_ORDER"); order != "" {
		c.Report.RoomOrder = order
	}
}

// setDefaults sets default values for configuration fields if not provided
func (c *Config) setDefaults() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Report.RoomOrder = strings.ToLower(strings.TrimSpace(c.Report.RoomOrder))

	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Report.RoomOrder == "" {
		c.Report.RoomOrder = defaultRoomOrder
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks if the configuration is valid. The first failing field is
// returned as an *errors.ConfigError wrapping errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidConfig, err)
	}

	fe := fieldErrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	return apperrors.NewConfigError(field, fmt.Sprint(fe.Value()),
		fmt.Errorf("%w: %s", apperrors.ErrInvalidConfig, describe(fe)))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// HouseOptions translates the report settings into house options
func (r ReportConfig) HouseOptions() ([]home.Option, error) {
	order, err := home.ParseRoomOrder(r.RoomOrder)
	if err != nil {
		return nil, err
	}
	return []home.Option{home.WithRoomOrder(order)}, nil
}

// InitLogging initializes the package logger at the configured level
func (c *Config) InitLogging() {
	logger.Initialize(c.Logging.Level)
}
