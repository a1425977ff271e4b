package config

import (
	"fmt"
	"net/url"
	"strings"

	"catalog-tool/internal/logging"
	"catalog-tool/internal/template"
)

// Validate checks every field and reports all problems in one error.
func Validate(cfg *Config) error {
	var allErrors []string
	allErrors = append(allErrors, validateBaseURL("Config.BaseURL", cfg.BaseURL)...)
	if cfg.TimeoutSeconds < 0 {
		allErrors = append(allErrors, fmt.Sprintf("- Config.TimeoutSeconds: must not be negative, got %d", cfg.TimeoutSeconds))
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		allErrors = append(allErrors, fmt.Sprintf("- Config.Logging.Level: %v", err))
	}
	if _, err := template.Parse("item_format", cfg.Output.ItemFormat); err != nil {
		allErrors = append(allErrors, fmt.Sprintf("- Config.Output.ItemFormat: %v", err))
	}
	if len(allErrors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(allErrors, "\n"))
	}
	return nil
}

func validateBaseURL(prefix, raw string) []string {
	u, err := url.Parse(raw)
	if err != nil {
		return []string{fmt.Sprintf("- %s: invalid URL '%s': %v", prefix, raw, err)}
	}
	var errs []string
	if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("- %s: scheme must be http or https, got '%s'", prefix, u.Scheme))
	}
	if u.Host == "" {
		errs = append(errs, fmt.Sprintf("- %s: missing host in '%s'", prefix, raw))
	}
	if u.RawQuery != "" {
		errs = append(errs, fmt.Sprintf("- %s: query parameters are not supported", prefix))
	}
	return errs
}
