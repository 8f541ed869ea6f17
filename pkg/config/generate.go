package config

import (
	"github.com/arthur-debert/promptpaste/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

// ToTOML renders the effective configuration as TOML
func (c *Config) ToTOML() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
