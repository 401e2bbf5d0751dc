// Package config handles loading and parsing application configuration.
// It supports two sources for the file path (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Before the file is read, an optional .env file in the working directory
// is loaded so that env overrides can be kept next to the binary.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StorageDriver selects the record store: "sqlite" or "memory".
	StorageDriver string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"sqlite"`

	// StoragePath is the filesystem path to the SQLite .db file.
	// ":memory:" keeps the database in RAM for the life of the process.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"storage/its.db"`

	HTTPServer `yaml:"http_server"`
	Admin      `yaml:"admin"`
	Auth       `yaml:"auth"`
	Tasks      `yaml:"tasks"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`

	// CORSOrigins lists the origins allowed to call the API from a browser.
	CORSOrigins []string `yaml:"cors_origins" env:"HTTP_SERVER_CORS_ORIGINS" env-default:"*" env-separator:","`
}

// Admin is the single administrator account. It is not stored in the
// database.
type Admin struct {
	Email    string `yaml:"email"    env:"ADMIN_EMAIL"    env-default:"admin@admin.com"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"admin#1947"`
}

// Auth configures how member passwords are stored and compared.
type Auth struct {
	// PasswordScheme is "plaintext" or "bcrypt".
	PasswordScheme string `yaml:"password_scheme" env:"AUTH_PASSWORD_SCHEME" env-default:"plaintext"`
}

// Tasks configures task creation.
type Tasks struct {
	// StrictValidation rejects tasks without a title, assignee or due date
	// and tasks with an unknown priority or status.
	StrictValidation bool `yaml:"strict_validation" env:"TASKS_STRICT_VALIDATION" env-default:"false"`
}

// MustLoad reads, validates, and returns the application config.
// It terminates the process on any error.
func MustLoad() *Config {
	// A missing .env file is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("cannot read .env file: %s", err.Error())
	}

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	return cfg
}

// Load reads the YAML file at path, applies env overrides and defaults,
// and checks the values that have a closed set of options.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	switch cfg.StorageDriver {
	case "sqlite", "memory":
	default:
		return nil, fmt.Errorf("config: unknown storage_driver %q", cfg.StorageDriver)
	}

	switch cfg.Auth.PasswordScheme {
	case "plaintext", "bcrypt":
	default:
		return nil, fmt.Errorf("config: unknown auth.password_scheme %q", cfg.Auth.PasswordScheme)
	}

	return &cfg, nil
}
