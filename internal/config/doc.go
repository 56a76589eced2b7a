// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults. It exposes strongly typed settings such as
// the overrides file the landing page is rendered from and the site origin used
// to tell same-origin links from external ones.
package config
