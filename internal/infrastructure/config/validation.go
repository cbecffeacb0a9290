package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLaunch(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLaunch(config *Config) []string {
	var validationErrors []string
	if config.Launch.URL != "" {
		if _, err := url.Parse(config.Launch.URL); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("launch.url is not a valid URL: %v", err))
		}
	}
	u, err := url.Parse(config.Launch.ControlSurfaceURL)
	if err != nil || u.Scheme == "" {
		validationErrors = append(validationErrors, "launch.control_surface_url must be an absolute URL")
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < 1 {
		validationErrors = append(validationErrors, "window.width must be positive")
	}
	if config.Window.Height < 1 {
		validationErrors = append(validationErrors, "window.height must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil || config.Logging.Level == "" {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	return validationErrors
}
