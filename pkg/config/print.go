package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/jt/pkg/errors"
)

// TOML renders the effective configuration as a TOML document
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrOutputError, "Failed to render configuration")
	}
	return string(data), nil
}
