// Package config holds the settings of the dagpath command line.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/mcuadros/go-defaults"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is the resolved configuration. Zero-valued fields are filled from
// the `default` tags by New.
type Config struct {
	/**
	 * default: info
	 * one of the logrus level names.
	 */
	LogLevel string `yaml:"log_level" default:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	/**
	 * default: false, switch logs to the JSON formatter.
	 */
	LogJSON bool `yaml:"log_json" default:"false"`
	/**
	 * default: text, output format of every command.
	 */
	Format string `yaml:"format" default:"text" validate:"oneof=text json yaml"`
	/**
	 * default: auto, text output colors: auto (terminal only), always or never.
	 */
	Color string `yaml:"color" default:"auto" validate:"oneof=auto always never"`
	/**
	 * default: 4, documents solved at once by the batch command.
	 */
	Concurrency int `yaml:"concurrency" default:"4" validate:"min=1,max=1024"`
	/**
	 * default: false, report a cyclic graph as an error instead of "no path".
	 */
	FailOnCycle bool `yaml:"fail_on_cycle" default:"false"`
	/**
	 * default: false, ignore edge weights and count edges.
	 */
	UnitWeights bool `yaml:"unit_weights" default:"false"`
	/**
	 * default: weight, edge attribute holding the weight in YAML/JSON documents.
	 */
	WeightKey string `yaml:"weight_key" default:"weight" validate:"required"`
	/**
	 * default: duration, node attribute holding the duration in YAML/JSON documents.
	 */
	DurationKey string `yaml:"duration_key" default:"duration" validate:"required"`
}

// Option overrides one setting after defaults and file values were applied.
type Option func(*Config)

// New returns a Config with defaults applied, then opts.
func New(opts ...Option) *Config {
	c := &Config{}
	defaults.SetDefaults(c)
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load reads the YAML file at path over the defaults, applies opts and
// validates the result. An empty path skips the file.
func Load(path string, opts ...Option) (*Config, error) {
	c := New()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Annotatef(err, "read config %s", path)
		}
		if err = yaml.Unmarshal(data, c); err != nil {
			return nil, errors.NotValidf("config %s: %v", path, err)
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	return c, nil
}

// Validate checks every field against its `validate` tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.NotValidf("config: %v", err)
	}

	return nil
}

func WithLogLevel(level string) Option {
	return func(c *Config) { c.LogLevel = level }
}

func WithLogJSON(enabled bool) Option {
	return func(c *Config) { c.LogJSON = enabled }
}

func WithFormat(format string) Option {
	return func(c *Config) { c.Format = format }
}

func WithColor(mode string) Option {
	return func(c *Config) { c.Color = mode }
}

func WithConcurrency(n int) Option {
	return func(c *Config) { c.Concurrency = n }
}

func WithFailOnCycle(enabled bool) Option {
	return func(c *Config) { c.FailOnCycle = enabled }
}

func WithUnitWeights(enabled bool) Option {
	return func(c *Config) { c.UnitWeights = enabled }
}
