package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup. Values come from,
// in increasing precedence: built-in defaults, an optional prism.yaml,
// environment variables with the PRISM_ prefix, and command-line flags.
type Config struct {
	Port          int           `mapstructure:"port"`
	AssetsDir     string        `mapstructure:"assets_dir"`
	BrandScoped   bool          `mapstructure:"brand_scoped"`
	LogLevel      string        `mapstructure:"log_level"`
	OpenAIKey     string        `mapstructure:"openai_api_key"`
	OpenAIModel   string        `mapstructure:"openai_model"`
	OpenAITimeout time.Duration `mapstructure:"openai_timeout"`
}

const envPrefix = "PRISM"

// Load reads configuration from the working directory. A missing config
// file or .env is not an error; missing required values are.
func Load() (*Config, error) {
	// Best effort. A repo without a .env file is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("prism")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("port", 3000)
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("brand_scoped", true)
	v.SetDefault("log_level", "info")
	// Registered empty so AutomaticEnv can populate it; Unmarshal only
	// sees keys viper knows about.
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("openai_timeout", 20*time.Second)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}
