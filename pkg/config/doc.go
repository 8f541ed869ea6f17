// Package config handles configuration management for promptpaste.
// Values are layered from embedded defaults, the user's config file,
// PP_* environment variables and finally PROMPT_PASTE_STORAGE.
package config
