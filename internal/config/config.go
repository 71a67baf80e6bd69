package config

import (
	"strings"
	"time"
)

// Environments recognised by Config.Env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Explanation providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config is the root application configuration.
type Config struct {
	Env         string            `yaml:"env" env:"APP_ENV" env-default:"production"`
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Dictionary  DictionaryConfig  `yaml:"dictionary"`
	Explanation ExplanationConfig `yaml:"explanation"`
	Relay       RelayConfig       `yaml:"relay"`
	Lookup      LookupConfig      `yaml:"lookup"`
}

// IsDevelopment reports whether verbose error details may be returned to clients.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, EnvDevelopment)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"102400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds the origin allow-list. Entries are literal origins or
// glob patterns such as "https://*.railway.app".
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"chrome-extension://*,https://*.herokuapp.com,https://*.railway.app,https://*.digitaloceanspaces.com,https://*.elasticbeanstalk.com"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// RateLimitConfig holds the per-client sliding-window quota.
type RateLimitConfig struct {
	Window          time.Duration `yaml:"window"           env:"RATE_LIMIT_WINDOW"           env-default:"15m"`
	MaxRequests     int           `yaml:"max_requests"     env:"RATE_LIMIT_MAX_REQUESTS"     env-default:"100"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}

// DictionaryConfig points at the FreeDictionary-compatible API.
type DictionaryConfig struct {
	BaseURL string        `yaml:"base_url" env:"DICTIONARY_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout time.Duration `yaml:"timeout"  env:"DICTIONARY_TIMEOUT"  env-default:"10s"`
}

// ExplanationConfig selects and authenticates the language-model backend.
type ExplanationConfig struct {
	Provider string        `yaml:"provider" env:"EXPLANATION_PROVIDER" env-default:"openai"`
	APIKey   string        `yaml:"api_key"  env:"OPENAI_API_KEY,ANTHROPIC_API_KEY,EXPLANATION_API_KEY"`
	BaseURL  string        `yaml:"base_url" env:"EXPLANATION_BASE_URL"`
	Model    string        `yaml:"model"    env:"EXPLANATION_MODEL"    env-default:"gpt-3.5-turbo"`
	Timeout  time.Duration `yaml:"timeout"  env:"EXPLANATION_TIMEOUT"  env-default:"30s"`
}

// RelayConfig holds the completion limits used by POST /explain.
type RelayConfig struct {
	MaxTokens   int     `yaml:"max_tokens"  env:"RELAY_MAX_TOKENS"  env-default:"100"`
	Temperature float64 `yaml:"temperature" env:"RELAY_TEMPERATURE" env-default:"0.5"`
}

// Presentation surfaces accepted by LookupConfig.Surface.
const (
	SurfacePanel = "panel"
	SurfacePopup = "popup"
)

// LookupConfig holds client-side lookup settings.
type LookupConfig struct {
	AIFallback   bool          `yaml:"ai_fallback"   env:"LOOKUP_AI_FALLBACK"   env-default:"true"`
	RelayURL     string        `yaml:"relay_url"     env:"LOOKUP_RELAY_URL"`
	RelayTimeout time.Duration `yaml:"relay_timeout" env:"LOOKUP_RELAY_TIMEOUT" env-default:"30s"`
	MaxTokens    int           `yaml:"max_tokens"    env:"LOOKUP_MAX_TOKENS"    env-default:"150"`
	Temperature  float64       `yaml:"temperature"   env:"LOOKUP_TEMPERATURE"   env-default:"0.7"`
	Surface      string        `yaml:"surface"       env:"LOOKUP_SURFACE"       env-default:"panel"`
	Debug        bool          `yaml:"debug"         env:"LOOKUP_DEBUG"         env-default:"false"`
}

// UsesRelay reports whether explanations go through a relay server instead
// of calling the language model directly.
func (c LookupConfig) UsesRelay() bool {
	return strings.TrimSpace(c.RelayURL) != ""
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}
