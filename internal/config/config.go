package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the API server.
type Config struct {
	Server ServerConfig
	Judge  JudgeConfig
	Gemini GeminiConfig
	Redis  RedisConfig
}

type ServerConfig struct {
	Port         int           `mapstructure:"API_PORT"`
	ReadTimeout  time.Duration `mapstructure:"API_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"API_WRITE_TIMEOUT"`
	RateLimit    int           `mapstructure:"API_RATE_LIMIT"`
	GinMode      string        `mapstructure:"GIN_MODE"`
}

type JudgeConfig struct {
	URL     string        `mapstructure:"JUDGE0_URL"`
	APIKey  string        `mapstructure:"RAPIDAPI_KEY"`
	APIHost string        `mapstructure:"RAPIDAPI_HOST"`
	Timeout time.Duration `mapstructure:"JUDGE0_TIMEOUT"`
}

type GeminiConfig struct {
	URL     string        `mapstructure:"GEMINI_URL"`
	APIKey  string        `mapstructure:"GEMINI_API_KEY"`
	Model   string        `mapstructure:"GEMINI_MODEL"`
	Timeout time.Duration `mapstructure:"GEMINI_TIMEOUT"`
}

type RedisConfig struct {
	// URL is optional; when empty the in-memory rate limiter is used.
	URL string `mapstructure:"REDIS_URL"`
}

// Load reads configuration from environment variables and .env file.
// Upstream API keys are not validated here: their absence is a deployment
// error that surfaces as upstream authentication failures.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("API_READ_TIMEOUT", "10s")
	viper.SetDefault("API_WRITE_TIMEOUT", "120s")
	viper.SetDefault("API_RATE_LIMIT", 100)
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("JUDGE0_URL", "https://judge0-ce.p.rapidapi.com")
	viper.SetDefault("RAPIDAPI_HOST", "judge0-ce.p.rapidapi.com")
	viper.SetDefault("JUDGE0_TIMEOUT", "90s")
	viper.SetDefault("GEMINI_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_TIMEOUT", "90s")
	viper.SetDefault("REDIS_URL", "")

	// Attempt to read .env file (non-fatal if missing)
	_ = viper.ReadInConfig()

	cfg := &Config{}
	cfg.Server.Port = viper.GetInt("API_PORT")
	cfg.Server.ReadTimeout = viper.GetDuration("API_READ_TIMEOUT")
	cfg.Server.WriteTimeout = viper.GetDuration("API_WRITE_TIMEOUT")
	cfg.Server.RateLimit = viper.GetInt("API_RATE_LIMIT")
	cfg.Server.GinMode = viper.GetString("GIN_MODE")
	cfg.Judge.URL = viper.GetString("JUDGE0_URL")
	cfg.Judge.APIKey = viper.GetString("RAPIDAPI_KEY")
	cfg.Judge.APIHost = viper.GetString("RAPIDAPI_HOST")
	cfg.Judge.Timeout = viper.GetDuration("JUDGE0_TIMEOUT")
	cfg.Gemini.URL = viper.GetString("GEMINI_URL")
	cfg.Gemini.APIKey = viper.GetString("GEMINI_API_KEY")
	cfg.Gemini.Model = viper.GetString("GEMINI_MODEL")
	cfg.Gemini.Timeout = viper.GetDuration("GEMINI_TIMEOUT")
	cfg.Redis.URL = viper.GetString("REDIS_URL")

	return cfg, nil
}
