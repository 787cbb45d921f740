// Package config loads the phcite command configuration from a YAML file
// and PHCITE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/coolbeans/phcite/pkg/docket"
	"github.com/coolbeans/phcite/pkg/logging"
)

const envPrefix = "PHCITE"

// Output formats accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the complete CLI configuration.
type Config struct {
	Log     logging.LogConfig `mapstructure:"log" yaml:"log"`
	Output  OutputConfig      `mapstructure:"output" yaml:"output"`
	Rules   RulesConfig       `mapstructure:"rules" yaml:"rules"`
	Watch   WatchConfig       `mapstructure:"watch" yaml:"watch"`
	Workers int               `mapstructure:"workers" yaml:"workers"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// RulesConfig points at an alternative statutory rule table.
type RulesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// WatchConfig controls the directory watcher.
type WatchConfig struct {
	Extensions []string      `mapstructure:"extensions" yaml:"extensions"`
	Debounce   time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// Defaults.
var (
	DefaultExtensions = []string{".txt", ".html", ".md"}
	DefaultDebounce   = 200 * time.Millisecond
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registering every key lets AutomaticEnv resolve it without a file.
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_paths", []string{"stderr"})
	v.SetDefault("output.format", FormatText)
	v.SetDefault("rules.file", "")
	v.SetDefault("watch.extensions", DefaultExtensions)
	v.SetDefault("watch.debounce", DefaultDebounce)
	v.SetDefault("workers", runtime.NumCPU())
	return v
}

// Load reads the YAML file at path, applies PHCITE_* overrides and
// validates the result. An empty path loads from the environment only.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromEnv()
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from defaults and PHCITE_* environment
// variables, e.g. PHCITE_OUTPUT_FORMAT=json or PHCITE_LOG_LEVEL=debug.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills zero values.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	for i, ext := range cfg.Watch.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Watch.Extensions[i] = ext
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("output.format %q: want text, json or yaml", c.Output.Format))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q: want console or json", c.Log.Format))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce %s: must not be negative", c.Watch.Debounce))
	}
	return errors.Join(errs...)
}

// RuleSet returns the statutory rule table named by rules.file, or the
// built-in table when none is set.
func (c *Config) RuleSet() (*docket.RuleSet, error) {
	if c.Rules.File == "" {
		return docket.DefaultRules(), nil
	}
	return docket.LoadRulesFile(c.Rules.File)
}
