package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Stock   StockConfig   `mapstructure:"stock"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig selects and configures the gallery persistence backend.
// The file driver mirrors the client's local-storage blobs on disk; the
// postgres driver keeps the gallery in a database.
type StorageConfig struct {
	Driver      string `mapstructure:"driver"       validate:"required,oneof=file postgres"`
	FilePath    string `mapstructure:"file_path"    validate:"required_if=Driver file"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Driver postgres"`
}

// LLMConfig contains the generative text/image integration settings.
type LLMConfig struct {
	GeminiAPIKey   string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName      string `mapstructure:"model_name"       validate:"required"`
	ImageModelName string `mapstructure:"image_model_name" validate:"required"`

	// MaxRetries and RetryDelaySeconds tune the backoff applied to text
	// generation calls hitting quota or overload errors.
	MaxRetries        int `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=1,lte=60"`
}

// StockConfig holds the stock photo provider credentials. A provider with an
// empty key is simply skipped in the fallback chain.
type StockConfig struct {
	PexelsAPIKey  string `mapstructure:"pexels_api_key"`
	PixabayAPIKey string `mapstructure:"pixabay_api_key"`
}
