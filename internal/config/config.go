// Package config loads skillcoach configuration from an optional TOML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/skillcoach/internal/llm"
)

// Config is the application configuration.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `toml:"db_path"`

	// User is the default user identity for CLI commands.
	User string `toml:"user"`

	LLM LLMConfig `toml:"llm"`
}

// LLMConfig is the file-level shape of the LLM settings.
type LLMConfig struct {
	Provider       string `toml:"provider"`
	AnthropicKey   string `toml:"anthropic_api_key"`
	AnthropicModel string `toml:"anthropic_model"`
	OpenAIKey      string `toml:"openai_api_key"`
	OpenAIModel    string `toml:"openai_model"`
	OpenAIBaseURL  string `toml:"openai_base_url"`
	GeminiKey      string `toml:"gemini_api_key"`
	GeminiModel    string `toml:"gemini_model"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{User: "local"}
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/skillcoach/skillcoach.toml, falling back to
// ~/.config/skillcoach/skillcoach.toml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "skillcoach", "skillcoach.toml"), nil
}

// Load reads the config file at path (missing file is not an error) and
// applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("SKILLCOACH_DB"); p != "" {
		c.DBPath = p
	}
	if u := os.Getenv("SKILLCOACH_USER"); u != "" {
		c.User = u
	}
}

// LLMSettings maps the file-level LLM section onto the provider package's
// config, with environment variables taking priority over file values.
func (c *Config) LLMSettings() llm.Config {
	cfg := llm.DefaultConfig()

	if c.LLM.Provider != "" {
		cfg.Provider = c.LLM.Provider
	}
	if c.LLM.AnthropicKey != "" {
		cfg.Anthropic.APIKey = c.LLM.AnthropicKey
	}
	if c.LLM.AnthropicModel != "" {
		cfg.Anthropic.Model = c.LLM.AnthropicModel
	}
	if c.LLM.OpenAIKey != "" {
		cfg.OpenAI.APIKey = c.LLM.OpenAIKey
	}
	if c.LLM.OpenAIModel != "" {
		cfg.OpenAI.Model = c.LLM.OpenAIModel
	}
	if c.LLM.OpenAIBaseURL != "" {
		cfg.OpenAI.BaseURL = c.LLM.OpenAIBaseURL
	}
	if c.LLM.GeminiKey != "" {
		cfg.Gemini.APIKey = c.LLM.GeminiKey
	}
	if c.LLM.GeminiModel != "" {
		cfg.Gemini.Model = c.LLM.GeminiModel
	}

	// Environment wins over the file for every field it sets.
	env := llm.ConfigFromEnv()
	def := llm.DefaultConfig()
	if env.Provider != def.Provider {
		cfg.Provider = env.Provider
	}
	if env.Anthropic.APIKey != "" {
		cfg.Anthropic.APIKey = env.Anthropic.APIKey
	}
	if env.Anthropic.Model != def.Anthropic.Model {
		cfg.Anthropic.Model = env.Anthropic.Model
	}
	if env.OpenAI.APIKey != "" {
		cfg.OpenAI.APIKey = env.OpenAI.APIKey
	}
	if env.OpenAI.Model != def.OpenAI.Model {
		cfg.OpenAI.Model = env.OpenAI.Model
	}
	if env.OpenAI.BaseURL != "" {
		cfg.OpenAI.BaseURL = env.OpenAI.BaseURL
	}
	if env.Gemini.APIKey != "" {
		cfg.Gemini.APIKey = env.Gemini.APIKey
	}
	if env.Gemini.Model != def.Gemini.Model {
		cfg.Gemini.Model = env.Gemini.Model
	}
	if env.Timeout != def.Timeout {
		cfg.Timeout = env.Timeout
	}

	return cfg
}
