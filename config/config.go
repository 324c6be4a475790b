// Package config loads the application configuration from a TOML file with
// environment variable overrides for secrets.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server ServerConfig `toml:"server"`
	LLM    LLMConfig    `toml:"llm"`
	Refine RefineConfig `toml:"refine"`
}

type ServerConfig struct {
	Addr   string `toml:"addr"`
	DBPath string `toml:"db_path"`
}

type LLMConfig struct {
	Provider string `toml:"provider"` // "gemini" or "openai"
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type RefineConfig struct {
	MaxIterations int    `toml:"max_iterations"`
	ProfilesPath  string `toml:"profiles_path"`
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:   ":8080",
			DBPath: "sessions.db",
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-2.0-flash",
		},
		Refine: RefineConfig{
			MaxIterations: 5,
		},
	}
}

// Load reads the config file at path, falling back to defaults when path is
// empty or missing. GOOGLE_API_KEY / OPENAI_API_KEY override llm.api_key.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
			}
		}
	}

	switch cfg.LLM.Provider {
	case "gemini":
		if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
			cfg.LLM.APIKey = key
		}
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			cfg.LLM.APIKey = key
		}
	default:
		return Config{}, fmt.Errorf("config: unknown llm provider %q", cfg.LLM.Provider)
	}

	if cfg.Refine.MaxIterations < 1 {
		cfg.Refine.MaxIterations = 5
	}
	return cfg, nil
}
