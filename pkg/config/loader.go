package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/paths"
)

// Environment
const (
	// EnvConfigFile names a config file to load instead of the default one
	EnvConfigFile = "PROJMARKS_CONFIG"

	// EnvPrefix prefixes every setting override, e.g. PROJMARKS_JUMP_PREFIX
	EnvPrefix = "PROJMARKS_"
)

// LoadOptions controls Load.
type LoadOptions struct {
	// File is an explicit config file. It must exist when set.
	File string

	// Overrides are applied last, keyed like the config file.
	Overrides map[string]interface{}

	// Paths locates the default config and storage files.
	Paths paths.Paths
}

// parserFor picks a koanf parser from the file extension.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	p := opts.Paths
	if p == nil {
		p = paths.New()
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User file
	path, explicit := opts.File, opts.File != ""
	if path == "" {
		path = os.Getenv(EnvConfigFile)
		explicit = path != ""
	}
	if path == "" {
		path = p.ConfigFile()
	}
	path = paths.ExpandHome(path)

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
		logger.Debug().Str("path", path).Msg("config file loaded")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Decode
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
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if strings.TrimSpace(cfg.StorageFile) == "" {
		cfg.StorageFile = p.StorageFile()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("storage", cfg.StorageFile).
		Strs("markers", cfg.ProjectMarkers).
		Str("jump_prefix", cfg.JumpPrefix).
		Msg("configuration ready")
	return &cfg, nil
}
