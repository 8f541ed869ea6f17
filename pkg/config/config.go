package config

import (
	"strings"

	"github.com/arthur-debert/promptpaste/pkg/types"
)

// Prompt styles
const (
	PromptStylePlain = "plain"
	PromptStyleForm  = "form"
)

// Config is the effective promptpaste configuration
type Config struct {
	Storage Storage `koanf:"storage" toml:"storage"`
	Import  Import  `koanf:"import" toml:"import"`
	List    List    `koanf:"list" toml:"list"`
	Prompt  Prompt  `koanf:"prompt" toml:"prompt"`
	Logging Logging `koanf:"logging" toml:"logging"`
}

// Storage holds storage location settings
type Storage struct {
	Root             string `koanf:"root" toml:"root"`
	DefaultExtension string `koanf:"default_extension" toml:"default_extension"`
}

// Import holds folder import settings
type Import struct {
	Extensions []string `koanf:"extensions" toml:"extensions"`
}

// List holds listing settings
type List struct {
	PreviewWidth int `koanf:"preview_width" toml:"preview_width"`
}

// Prompt holds interactive prompt settings
type Prompt struct {
	Style string `koanf:"style" toml:"style"`
}

// Logging holds log sink settings
type Logging struct {
	File bool `koanf:"file" toml:"file"`
}

// Rules returns the core rules with the configurable parts applied.
// Prohibited names, the skill sentinel and the merge separator are fixed.
func (c *Config) Rules() types.Rules {
	rules := types.DefaultRules()
	if c.Storage.DefaultExtension != "" {
		rules.DefaultExtension = c.Storage.DefaultExtension
	}
	if len(c.Import.Extensions) > 0 {
		rules.EligibleExtensions = append([]string(nil), c.Import.Extensions...)
	}
	return rules
}

// normalizeExtension lowercases ext and ensures a leading dot
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
