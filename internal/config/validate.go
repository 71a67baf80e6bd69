package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Credentials are checked by the binaries that need them (RequireAPIKey).
func (c *Config) Validate() error {
	switch strings.ToLower(c.Env) {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("env must be %q or %q (got %q)", EnvDevelopment, EnvProduction, c.Env)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if err := c.Explanation.validate(); err != nil {
		return fmt.Errorf("explanation: %w", err)
	}

	if err := validateTemperature(c.Relay.Temperature); err != nil {
		return fmt.Errorf("relay: %w", err)
	}
	if err := validateTemperature(c.Lookup.Temperature); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	switch c.Lookup.Surface {
	case SurfacePanel, SurfacePopup:
	default:
		return fmt.Errorf("lookup.surface must be \"panel\" or \"popup\" (got %q)", c.Lookup.Surface)
	}

	if len(c.CORS.Origins()) == 0 {
		return fmt.Errorf("cors.allowed_origins must not be empty")
	}

	return nil
}

// RequireAPIKey fails when the explanation backend has no credentials.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.Explanation.APIKey) == "" {
		return fmt.Errorf("explanation.api_key is required for provider %q", c.Explanation.Provider)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %v)", r.Window)
	}
	if r.MaxRequests <= 0 {
		return fmt.Errorf("max_requests must be > 0 (got %d)", r.MaxRequests)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}

func (e *ExplanationConfig) validate() error {
	switch e.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderOpenAI, ProviderAnthropic, e.Provider)
	}
	if strings.TrimSpace(e.Model) == "" {
		return fmt.Errorf("model is required")
	}
	return nil
}

func validateTemperature(t float64) error {
	if t < 0 || t > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", t)
	}
	return nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(raw string) []string {
	parts := lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(parts)
}
