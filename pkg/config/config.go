package config

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/jt/pkg/adapters"
	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/errors"
	"github.com/arthur-debert/jt/pkg/logging"
	"github.com/arthur-debert/jt/pkg/types"
)

// Config is the effective configuration
type Config struct {
	Output OutputConfig `koanf:"output" toml:"output"`
	Input  InputConfig  `koanf:"input" toml:"input"`
	Log    LogConfig    `koanf:"log" toml:"log"`
	Colors ColorsConfig `koanf:"colors" toml:"colors"`
}

type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

type InputConfig struct {
	// Format is empty for auto detection
	Format string `koanf:"format" toml:"format"`
}

type LogConfig struct {
	Level string `koanf:"level" toml:"level"`
}

// ColorsConfig names the color of each token class
type ColorsConfig struct {
	Key     string   `koanf:"key" toml:"key"`
	String  string   `koanf:"string" toml:"string"`
	Number  string   `koanf:"number" toml:"number"`
	Boolean string   `koanf:"boolean" toml:"boolean"`
	Null    string   `koanf:"null" toml:"null"`
	Columns []string `koanf:"columns" toml:"columns"`
}

// envOverrides maps environment variables to config keys
var envOverrides = map[string]string{
	"JT_OUTPUT_FORMAT": "output.format",
	"JT_INPUT_FORMAT":  "input.format",
	"JT_LOG_LEVEL":     "log.level",
}

// DefaultPath returns the user config location. XDG_CONFIG_HOME is read
// through the environment port when set.
func DefaultPath(env adapters.Environment) string {
	if home, ok := env.Get("XDG_CONFIG_HOME"); ok && home != "" {
		return filepath.Join(home, "jt", "config.toml")
	}
	return filepath.Join(xdg.ConfigHome, "jt", "config.toml")
}

// Load builds the effective configuration. An empty path means the
// default location, which may be absent; an explicit path must exist.
func Load(path string, ctx *adapters.Context) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrUnknown, "Failed to load default configuration")
	}

	// 2. User file
	explicit := path != ""
	if !explicit {
		path = DefaultPath(ctx.Env)
	}
	content, err := ctx.FS.ReadFile(path)
	switch {
	case err == nil:
		if err := k.Load(&rawBytesProvider{bytes: []byte(content)}, toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "Invalid config file: %s", path).
				WithSuggestion("Check the TOML syntax of the config file")
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	case stderrors.Is(err, fs.ErrNotExist) && !explicit:
		logger.Trace().Str("path", path).Msg("No config file")
	case stderrors.Is(err, fs.ErrNotExist):
		return nil, errors.Newf(errors.ErrFileNotFound, "Config file not found: %s", path).
			WithSuggestion("Check the --config path and try again")
	default:
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "Cannot read config file: %s", path)
	}

	// 3. Environment overrides
	overrides := map[string]interface{}{}
	for name, key := range envOverrides {
		if v, ok := ctx.Env.Get(name); ok && v != "" {
			overrides[key] = v
		}
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrUnknown, "Failed to apply environment overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "Invalid configuration").
			WithSuggestion("Check the value types in the config file")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := types.ParseOutputFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Input.Format != "" {
		if _, err := types.ParseInputFormat(c.Input.Format); err != nil {
			return err
		}
	}
	_, err := c.Palette()
	return err
}

// OutputFormat returns the configured output format
func (c *Config) OutputFormat() types.OutputFormat {
	f, err := types.ParseOutputFormat(c.Output.Format)
	if err != nil {
		return types.DefaultOutputFormat
	}
	return f
}

// InputFormat returns the configured input format, or "" for detection
func (c *Config) InputFormat() types.InputFormat {
	if c.Input.Format == "" {
		return ""
	}
	f, err := types.ParseInputFormat(c.Input.Format)
	if err != nil {
		return ""
	}
	return f
}

// Palette resolves the configured color names
func (c *Config) Palette() (colorize.Palette, error) {
	p := colorize.DefaultPalette()
	fields := []struct {
		name   string
		target *string
	}{
		{c.Colors.Key, &p.Key},
		{c.Colors.String, &p.String},
		{c.Colors.Number, &p.Number},
		{c.Colors.Boolean, &p.Boolean},
		{c.Colors.Null, &p.Null},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		idx, err := colorize.ParseColor(f.name)
		if err != nil {
			return p, invalidColor(err)
		}
		*f.target = idx
	}

	if len(c.Colors.Columns) > 0 {
		columns := make([]string, 0, len(c.Colors.Columns))
		for _, name := range c.Colors.Columns {
			idx, err := colorize.ParseColor(name)
			if err != nil {
				return p, invalidColor(err)
			}
			columns = append(columns, idx)
		}
		p.Columns = columns
	}
	return p, nil
}

func invalidColor(err error) error {
	return errors.Wrap(err, errors.ErrInvalidInput, "Invalid color in configuration").
		WithSuggestion("Use a color name such as cyan or bright-red, or a number from 0 to 255")
}
