// Package config loads service configuration from the process environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable read by ParseEnv.
const EnvPrefix = "LANDING_"

// ParseEnv loads configuration from LANDING_-prefixed environment variables.
func ParseEnv(target any) error {
	return ParseEnvWithOptions(target, env.Options{})
}

// ParseEnvWithOptions loads configuration using explicit parser options. The
// LANDING_ prefix is applied when opts does not set one.
func ParseEnvWithOptions(target any, opts env.Options) error {
	if opts.Prefix == "" {
		opts.Prefix = EnvPrefix
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
