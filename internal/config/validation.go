package config

import (
	"fmt"
	"strings"

	"hwscan/internal/logging"
)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errors = append(errors, ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error, got %q", c.Logging.Level),
		})
	}

	if c.Commands.TimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Path:    "commands.timeout_seconds",
			Message: fmt.Sprintf("must not be negative, got %d", c.Commands.TimeoutSeconds),
		})
	}

	if c.Reports.DefaultName == "" {
		errors = append(errors, ValidationError{
			Path:    "reports.default_name",
			Message: "must not be empty",
		})
	} else if strings.ContainsAny(c.Reports.DefaultName, `/\`) {
		errors = append(errors, ValidationError{
			Path:    "reports.default_name",
			Message: fmt.Sprintf("must not contain path separators, got %q", c.Reports.DefaultName),
		})
	}

	return errors
}
