package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/arthur-debert/promptpaste/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "PP_"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// GetDefaultsContent returns the embedded defaults file
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// Load builds the effective configuration. configFile may be empty or
// point to a file that does not exist; both are skipped.
func Load(configFile string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configFile)
			}
			logger.Debug().Str("path", configFile).Msg("Loaded user config")
		}
	}

	// 3. PP_SECTION_KEY environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. The storage override wins over everything else
	if root := os.Getenv(paths.EnvStorage); root != "" {
		if err := k.Load(confmap.Provider(map[string]interface{}{"storage.root": root}, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply storage override")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps PP_LIST_PREVIEW_WIDTH to list.preview_width. Only the first
// underscore separates the section since keys contain underscores.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func postProcessConfig(cfg *Config) error {
	cfg.Storage.Root = paths.ExpandHome(cfg.Storage.Root)

	cfg.Storage.DefaultExtension = normalizeExtension(cfg.Storage.DefaultExtension)
	if cfg.Storage.DefaultExtension == "" {
		return errors.New(errors.ErrConfigLoad, "storage.default_extension cannot be empty")
	}

	exts := make([]string, 0, len(cfg.Import.Extensions))
	for _, ext := range cfg.Import.Extensions {
		if n := normalizeExtension(ext); n != "" {
			exts = append(exts, n)
		}
	}
	if len(exts) == 0 {
		return errors.New(errors.ErrConfigLoad, "import.extensions cannot be empty")
	}
	cfg.Import.Extensions = exts

	if cfg.List.PreviewWidth <= 0 {
		return errors.Newf(errors.ErrConfigLoad, "list.preview_width must be positive, got %d", cfg.List.PreviewWidth)
	}

	cfg.Prompt.Style = strings.ToLower(strings.TrimSpace(cfg.Prompt.Style))
	switch cfg.Prompt.Style {
	case PromptStylePlain, PromptStyleForm:
	default:
		return errors.Newf(errors.ErrConfigLoad, "prompt.style must be %q or %q, got %q",
			PromptStylePlain, PromptStyleForm, cfg.Prompt.Style)
	}

	return nil
}
