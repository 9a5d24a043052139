package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from an optional YAML
// file and LEXIZ_* environment variables.
type Config struct {
	Env         string `mapstructure:"env"`          // current environment (local, production)
	UserID      string `mapstructure:"user_id"`      // learner whose progress is tracked
	CatalogPath string `mapstructure:"catalog_path"` // path to the vocabulary catalog JSON
	DBPath      string `mapstructure:"db_path"`      // SQLite path; empty means the default data dir
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("env", "local")
	v.SetDefault("user_id", "default")
	v.SetDefault("catalog_path", "assets/catalog.json")
	v.SetDefault("db_path", "")

	v.SetEnvPrefix("lexiz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
