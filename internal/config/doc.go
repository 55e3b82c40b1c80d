// Package config manages user-level settings stored at ~/.hugopost/config.yaml.
// Values can be overridden by HUGOPOST_* environment variables, which may come
// from a .env file in the working directory, and finally by command flags.
package config
