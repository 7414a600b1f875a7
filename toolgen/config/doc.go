// Package config defines the optional YAML/JSON configuration model the CLI
// accepts via -f/--config as well as the helper to load it. Flags always take
// precedence over configured defaults.
package config
