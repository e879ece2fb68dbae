// Package config loads pwcheck settings from defaults, an optional YAML
// file, PWCHECK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-password-strength/breach"
	"github.com/hasbyte1/go-password-strength/strength"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Denylist modes.
const (
	DenylistExact = "exact"
	DenylistBloom = "bloom"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the resolved CLI configuration.
type Config struct {
	Denylist DenylistConfig `mapstructure:"denylist" json:"denylist" yaml:"denylist"`
	Breach   BreachConfig   `mapstructure:"breach" json:"breach" yaml:"breach"`
	Output   string         `mapstructure:"output" json:"output" yaml:"output"`
	LogLevel string         `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
	NoColor  bool           `mapstructure:"no_color" json:"no_color" yaml:"no_color"`
}

// DenylistConfig selects the denylist.  An empty File means the embedded
// default list.
type DenylistConfig struct {
	File              string  `mapstructure:"file" json:"file" yaml:"file"`
	Mode              string  `mapstructure:"mode" json:"mode" yaml:"mode"`
	FalsePositiveRate float64 `mapstructure:"false_positive_rate" json:"false_positive_rate" yaml:"false_positive_rate"`
}

// BreachConfig configures lookup-key derivation.
type BreachConfig struct {
	Driver       string `mapstructure:"driver" json:"driver" yaml:"driver"`
	PrefixLength int    `mapstructure:"prefix_length" json:"prefix_length" yaml:"prefix_length"`
}

// Defaults returns the built-in settings, keyed the way viper sees them.
func Defaults() map[string]any {
	return map[string]any{
		"denylist.file":                "",
		"denylist.mode":                DenylistExact,
		"denylist.false_positive_rate": strength.DefaultFalsePositiveRate,
		"breach.driver":                string(breach.DriverSHA1),
		"breach.prefix_length":         breach.DefaultPrefixLen,
		"output":                       OutputText,
		"log_level":                    "warn",
		"no_color":                     false,
	}
}

// flagKeys maps config keys to the CLI flag that overrides them.
var flagKeys = map[string]string{
	"denylist.file":                "denylist",
	"denylist.mode":                "denylist-mode",
	"denylist.false_positive_rate": "bloom-fp-rate",
	"breach.driver":                "breach-driver",
	"breach.prefix_length":         "prefix-length",
	"output":                       "output",
	"log_level":                    "log-level",
	"no_color":                     "no-color",
}

// Load resolves the configuration.  When path is non-empty that file must
// exist; otherwise pwcheck.yaml is searched for in the user config
// directory and the working directory, and its absence is not an error.
// flags may be nil.
func Load(flags *pflag.FlagSet, path string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pwcheck")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "pwcheck"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("pwcheck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, fmt.Errorf("config: binding flag %q: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: decoding: %w", err)
	}
	return c, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output %q must be one of text, json, yaml", ErrInvalidConfig, c.Output)
	}

	switch c.Denylist.Mode {
	case DenylistExact:
	case DenylistBloom:
		if c.Denylist.File == "" {
			return fmt.Errorf("%w: bloom denylist mode needs denylist.file", ErrInvalidConfig)
		}
		if r := c.Denylist.FalsePositiveRate; r <= 0 || r >= 1 {
			return fmt.Errorf("%w: false_positive_rate %g must be in (0, 1)", ErrInvalidConfig, r)
		}
	default:
		return fmt.Errorf("%w: denylist mode %q must be exact or bloom", ErrInvalidConfig, c.Denylist.Mode)
	}

	if _, err := breach.ParseDriverName(c.Breach.Driver); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Breach.PrefixLength < 1 {
		return fmt.Errorf("%w: prefix_length %d must be positive", ErrInvalidConfig, c.Breach.PrefixLength)
	}
	return nil
}
