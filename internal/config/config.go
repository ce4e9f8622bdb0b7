// Package config loads settings from an optional foodrescuer.yaml file
// and FOODRESCUER_* environment variables. Flags in main override both.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Search SearchConfig `mapstructure:"search"`
	Embed  EmbedConfig  `mapstructure:"embed"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Data   DataConfig   `mapstructure:"data"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `mapstructure:"level"` // off, normal, verbose
	File  string `mapstructure:"file"`  // "stderr" logs to the console
}

// SearchConfig tunes recipe retrieval.
type SearchConfig struct {
	MaxResults int  `mapstructure:"max_results"`
	MinMatched int  `mapstructure:"min_matched"`
	Semantic   bool `mapstructure:"semantic"`
}

// EmbedConfig configures the embeddings backend used for semantic
// scoring. Semantic search stays off unless BaseURL is set.
type EmbedConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// DataConfig points at optional data files that replace the built-in
// recipe corpus and substitution tables.
type DataConfig struct {
	Recipes       string `mapstructure:"recipes"`
	Substitutions string `mapstructure:"substitutions"`
}

// Load reads configuration from foodrescuer.yaml (searched in the working
// directory) and the environment. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "normal")
	v.SetDefault("log.file", ".foodrescuer/rescuer.log")
	v.SetDefault("search.max_results", 5)
	v.SetDefault("search.min_matched", 1)
	v.SetDefault("search.semantic", false)
	v.SetDefault("embed.base_url", "")
	v.SetDefault("embed.api_key", "")
	v.SetDefault("embed.model", "text-embedding-3-small")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("data.recipes", "")
	v.SetDefault("data.substitutions", "")

	v.SetConfigName("foodrescuer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FOODRESCUER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
