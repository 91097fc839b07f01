package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the schemawalk CLI configuration
type Config struct {
	Language           string `mapstructure:"language"`
	Output             string `mapstructure:"output"`
	DisplayKey         string `mapstructure:"display_key"`
	MaxReferencePasses int    `mapstructure:"max_reference_passes"`
	CRDKind            string `mapstructure:"crd_kind"`
	Verbose            bool   `mapstructure:"verbose"`
}

// flagKeys maps config keys onto the persistent flags that override them
var flagKeys = map[string]string{
	"language":             "lang",
	"output":               "output",
	"display_key":          "display-key",
	"max_reference_passes": "max-reference-passes",
	"crd_kind":             "crd-kind",
	"verbose":              "verbose",
}

// Load resolves the configuration for cmd: flags override SCHEMAWALK_*
// environment variables, which override schemawalk.yaml (or the file named
// by --config), which overrides the defaults.
func Load(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("language", "en")
	v.SetDefault("output", "json")
	v.SetDefault("display_key", "x-display")
	v.SetDefault("max_reference_passes", 0)

	explicit := ""
	if f := lookupFlag(cmd, "config"); f != nil {
		explicit = f.Value.String()
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("schemawalk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Enable environment variable support
	v.SetEnvPrefix("SCHEMAWALK")
	v.AutomaticEnv()

	for key, flag := range flagKeys {
		if f := lookupFlag(cmd, flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// lookupFlag finds a flag whether or not cobra has merged persistent flags
// into cmd.Flags() yet
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	if f := cmd.PersistentFlags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

func validateConfig(c *Config) error {
	switch c.Output {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid output %q: want json or yaml", c.Output)
	}
	switch c.Language {
	case "en", "ja":
	default:
		return fmt.Errorf("invalid language %q: want en or ja", c.Language)
	}
	if c.MaxReferencePasses < 0 {
		return fmt.Errorf("max_reference_passes must not be negative")
	}
	return nil
}
