package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/redjax/ietfsys/internal/utils/path"
)

// EnvPrefix is stripped from environment variables; IETFSYS_CLOCK_UNDERFLOW
// becomes clock.underflow.
const EnvPrefix = "IETFSYS_"

// Config is the typed view of everything loaded into K.
type Config struct {
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`

	Output struct {
		// text, json, yaml or table
		Format string `koanf:"format"`
	} `koanf:"output"`

	Hostname struct {
		MaxLength int `koanf:"maxlength"`
	} `koanf:"hostname"`

	Clock struct {
		// reject or clamp
		Underflow string `koanf:"underflow"`
	} `koanf:"clock"`

	Resolver struct {
		Path string `koanf:"path"`
	} `koanf:"resolver"`
}

var (
	K = koanf.New(".")

	current = Defaults()
)

// Current returns the configuration from the last successful LoadConfig, or
// Defaults if it has not run.
func Current() Config {
	return current
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	var c Config
	c.Log.Level = "warn"
	c.Output.Format = "text"
	c.Hostname.MaxLength = 64
	c.Clock.Underflow = "reject"
	c.Resolver.Path = "/etc/resolv.conf"
	return c
}

// LoadConfig layers the config file, then IETFSYS_ environment variables, then
// command-line flags (highest precedence) into K and returns the result.
func LoadConfig(flagSet *pflag.FlagSet, configFile string) (Config, error) {
	cfg, err := load(K, flagSet, configFile)
	if err != nil {
		return Config{}, err
	}

	current = cfg
	return cfg, nil
}

func load(k *koanf.Koanf, flagSet *pflag.FlagSet, configFile string) (Config, error) {
	// Load from config file if provided
	if configFile != "" {
		expanded, err := path.ExpandPath(configFile)
		if err != nil {
			return Config{}, err
		}
		configFile = expanded

		parser, err := parserForFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return Config{}, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// This will convert IETFSYS_FOO_BAR to foo.bar
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("error loading environment: %w", err)
	}

	// Flags are named with dashes (--log-level) and land on dotted keys (log.level)
	if flagSet != nil {
		if err := k.Load(posflag.ProviderWithFlag(flagSet, ".", k, func(f *pflag.Flag) (string, interface{}) {
			return strings.ReplaceAll(f.Name, "-", "."), posflag.FlagVal(flagSet, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("error loading flags: %w", err)
		}
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	if cfg.Resolver.Path != "" {
		expanded, err := path.ExpandPath(cfg.Resolver.Path)
		if err != nil {
			return Config{}, err
		}
		cfg.Resolver.Path = expanded
	}

	return cfg, cfg.Validate()
}

// Validate checks values that have a closed set of options.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "yaml", "table":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}

	switch strings.ToLower(c.Clock.Underflow) {
	case "reject", "clamp":
	default:
		return fmt.Errorf("invalid clock underflow policy %q", c.Clock.Underflow)
	}

	if c.Hostname.MaxLength <= 0 {
		return fmt.Errorf("hostname max length must be positive, got %d", c.Hostname.MaxLength)
	}

	return nil
}

func parserForFile(name string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
