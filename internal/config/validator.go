package config

import (
	"fmt"
	"strings"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Manifest Mode").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string
}

// Validate checks cfg for settings that would fail at write time.
func Validate(cfg *Config) []ValidationResult {
	var results []ValidationResult
	add := func(category string, passed bool, msg string) {
		results = append(results, ValidationResult{Category: category, Passed: passed, Message: msg})
	}

	if cfg == nil || cfg.Manifest == nil {
		add("Manifest Mode", true, "No manifest configuration found (using defaults)")
		return results
	}

	m := cfg.Manifest
	switch m.Mode {
	case ModeEdit:
		add("Manifest Mode", true, "Manifests are edited in place")
	case ModeDelegate:
		add("Manifest Mode", true, "Manifest updates are delegated to an external tool")
		for _, part := range m.Command {
			if strings.TrimSpace(part) == "" {
				add("Manifest Command", false, "manifest.command contains an empty element")
				break
			}
		}
	default:
		add("Manifest Mode", false, fmt.Sprintf("Invalid manifest.mode %q: expected %q or %q", m.Mode, ModeEdit, ModeDelegate))
	}

	if d, err := m.TimeoutDuration(); err != nil {
		add("Manifest Timeout", false, err.Error())
	} else if d < 0 {
		add("Manifest Timeout", false, fmt.Sprintf("manifest.timeout must be positive, got %s", m.Timeout))
	}

	return results
}

// FirstError returns an error for the first failed result, or nil.
func FirstError(results []ValidationResult) error {
	for _, r := range results {
		if !r.Passed {
			return fmt.Errorf("%s: %s", r.Category, r.Message)
		}
	}
	return nil
}
