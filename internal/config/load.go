package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variables, e.g. PALAVRA_LLM_GEMINI_API_KEY.
const envPrefix = "PALAVRA"

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over file values. Returns a populated Config or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env vars alone may be enough.
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env-provided values for keys viper already knows
	// about, so bind every key explicitly.
	for _, key := range configKeys() {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.file_path", "./data")
	v.SetDefault("llm.model_name", "gemini-2.5-flash")
	v.SetDefault("llm.image_model_name", "gemini-2.5-flash-image")
	v.SetDefault("llm.max_retries", 5)
	v.SetDefault("llm.retry_delay_seconds", 4)
}

func configKeys() []string {
	return []string{
		"server.port",
		"server.log_level",
		"storage.driver",
		"storage.file_path",
		"storage.database_url",
		"llm.gemini_api_key",
		"llm.model_name",
		"llm.image_model_name",
		"llm.max_retries",
		"llm.retry_delay_seconds",
		"stock.pexels_api_key",
		"stock.pixabay_api_key",
	}
}
