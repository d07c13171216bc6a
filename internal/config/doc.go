// Package config defines the application configuration structure and
// loading behavior: defaults, an optional config file, and environment
// variables with the CONTACTS_ prefix, validated after unmarshaling.
package config
