package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/anthanhphan/gosdk/conflux"
	"github.com/anthanhphan/gosdk/logger"
)

// Config holds initializer configuration
type Config struct {
	Options   Options         `json:"options" yaml:"options"`
	Collector CollectorConfig `json:"collector" yaml:"collector"`
	Jobs      []JobConfig     `json:"jobs" yaml:"jobs"`
	Logger    logger.Config   `json:"logger" yaml:"logger"`
}

// Options is the flat string-keyed store the path resolver reads from
// (odoo_initializer_path, openmrs_initializer_path, data_dir, db_name).
type Options map[string]string

// Lookup implements port.ConfigStore.
func (o Options) Lookup(key string) (string, bool) {
	v, ok := o[key]
	return v, ok
}

type CollectorConfig struct {
	Workers   int    `json:"workers" yaml:"workers"`
	Delimiter string `json:"delimiter" yaml:"delimiter"`
}

// JobConfig describes one collection pass run by the application.
type JobConfig struct {
	Source     string   `json:"source" yaml:"source"`
	Folder     string   `json:"folder" yaml:"folder"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Options: Options{},
		Collector: CollectorConfig{
			Workers:   1,
			Delimiter: ",",
		},
		Logger: logger.Config{
			LogLevel:    logger.LevelInfo,
			LogEncoding: logger.EncodingJSON,
		},
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	configPath := path
	if configPath == "" {
		env := os.Getenv("ENV")
		if env == "" {
			env = "local"
		}
		configPath = filepath.Join("internal", "initializer", "config", env+".yaml")
	}

	cfg := DefaultConfig()

	parsedCfg, err := conflux.ParseConfig(configPath, cfg)
	if err != nil {
		// logger is not initialised yet at this point.
		log.Printf("Config file not found or failed to parse, using defaults if file not specified. Path: %s, Error: %v", configPath, err)
		if path != "" {
			return nil, err
		}
		return cfg, nil
	}

	if parsedCfg.Options == nil {
		parsedCfg.Options = Options{}
	}
	return parsedCfg, nil
}

// MustLoad loads configuration or exits on error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
