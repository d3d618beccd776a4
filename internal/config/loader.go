package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"llmcalc/internal/common/fsutil"
)

// EnvPrefix is the prefix for environment overrides, e.g. LLMCALC_ADDR.
const EnvPrefix = "LLMCALC"

// CORS configures the optional CORS middleware of the HTTP server.
type CORS struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" toml:"enabled" envconfig:"ENABLED"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	AllowedMethods []string `json:"allowed_methods" yaml:"allowed_methods" toml:"allowed_methods" envconfig:"ALLOWED_METHODS"`
	AllowedHeaders []string `json:"allowed_headers" yaml:"allowed_headers" toml:"allowed_headers" envconfig:"ALLOWED_HEADERS"`
}

// Defaults are the estimate inputs used when a request omits a field.
type Defaults struct {
	ParamsBillions float64 `json:"params_billions" yaml:"params_billions" toml:"params_billions" envconfig:"PARAMS_BILLIONS"`
	ModelQuant     string  `json:"model_quant" yaml:"model_quant" toml:"model_quant" envconfig:"MODEL_QUANT"`
	ContextLength  int     `json:"context_length" yaml:"context_length" toml:"context_length" envconfig:"CONTEXT_LENGTH"`
	UseKVCache     bool    `json:"use_kv_cache" yaml:"use_kv_cache" toml:"use_kv_cache" envconfig:"USE_KV_CACHE"`
	KVCacheQuant   string  `json:"kv_cache_quant" yaml:"kv_cache_quant" toml:"kv_cache_quant" envconfig:"KV_CACHE_QUANT"`
	MemoryMode     string  `json:"memory_mode" yaml:"memory_mode" toml:"memory_mode" envconfig:"MEMORY_MODE"`
	SystemMemoryGB float64 `json:"system_memory_gb" yaml:"system_memory_gb" toml:"system_memory_gb" envconfig:"SYSTEM_MEMORY_GB"`
}

// Config holds runtime parameters for the CLI and the HTTP server.
type Config struct {
	Addr         string   `json:"addr" yaml:"addr" toml:"addr" envconfig:"ADDR"`
	ModelsDir    string   `json:"models_dir" yaml:"models_dir" toml:"models_dir" envconfig:"MODELS_DIR"`
	LogLevel     string   `json:"log_level" yaml:"log_level" toml:"log_level" envconfig:"LOG_LEVEL"`
	MaxBodyBytes int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" envconfig:"MAX_BODY_BYTES"`
	CORS         CORS     `json:"cors" yaml:"cors" toml:"cors" envconfig:"CORS"`
	Defaults     Defaults `json:"defaults" yaml:"defaults" toml:"defaults" envconfig:"DEFAULTS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:         ":8080",
		LogLevel:     "info",
		MaxBodyBytes: 1 << 20,
		CORS: CORS{
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "X-Request-Id", "X-Log-Level"},
		},
		Defaults: Defaults{
			ParamsBillions: 7,
			ModelQuant:     "Q4",
			ContextLength:  2048,
			UseKVCache:     true,
			KVCacheQuant:   "F16",
			MemoryMode:     "DISCRETE_GPU",
			SystemMemoryGB: 32,
		},
	}
}

// Load reads a configuration file based on its extension on top of Default().
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse json: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyEnv overlays LLMCALC_* environment variables onto cfg. Unset variables
// leave the corresponding field unchanged.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("env overrides: %w", err)
	}
	return nil
}

// Resolve builds the effective configuration: defaults, then the optional
// file at path, then environment overrides.
func Resolve(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
