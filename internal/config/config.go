package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config stores all configuration for the relay service.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`

	VisionCredentialsFile string `mapstructure:"VISION_CREDENTIALS_FILE"`
	VisionAPIKey          string `mapstructure:"VISION_API_KEY"`

	FormatProvider string `mapstructure:"FORMAT_PROVIDER"`
	OpenAIAPIKey   string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel    string `mapstructure:"OPENAI_MODEL"`
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string `mapstructure:"GEMINI_MODEL"`

	// Per-stage provider timeouts, in seconds.
	AnnotateTimeout int `mapstructure:"ANNOTATE_TIMEOUT"`
	FormatTimeout   int `mapstructure:"FORMAT_TIMEOUT"`
}

// Load reads configuration from a .env file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// The .env file is optional; production deployments configure
	// purely through environment variables.
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("FORMAT_PROVIDER", "openai")
	// Credential keys default to empty so Unmarshal picks them up from
	// the environment: viper only decodes keys it has seen.
	viper.SetDefault("VISION_CREDENTIALS_FILE", "")
	viper.SetDefault("VISION_API_KEY", "")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("ANNOTATE_TIMEOUT", 10)
	viper.SetDefault("FORMAT_TIMEOUT", 20)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.VisionCredentialsFile == "" && c.VisionAPIKey == "" {
		return fmt.Errorf("either VISION_CREDENTIALS_FILE or VISION_API_KEY must be set")
	}
	switch c.FormatProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set for FORMAT_PROVIDER=openai")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set for FORMAT_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("unknown FORMAT_PROVIDER %q", c.FormatProvider)
	}
	return nil
}
