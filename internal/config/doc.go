// Package config loads and merges the application configuration from
// environment variables and an optional JSON file, then validates the result
// and fills in defaults. Environment variables win over the JSON file for
// non-zero fields.
package config
