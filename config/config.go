package config

import (
	"log/slog"
	"math"

	"github.com/echoflaresat/segcross/geom"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key looked up in the environment,
// e.g. SEGCROSS_TOLERANCE.
const EnvPrefix = "SEGCROSS"

// Output formats understood by the command.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the segcross command needs for one run.
type Config struct {
	Seg1              string  `yaml:"seg1" mapstructure:"seg1"`
	Seg2              string  `yaml:"seg2" mapstructure:"seg2"`
	Tolerance         float64 `yaml:"tolerance" mapstructure:"tolerance"`
	Epsilon           float64 `yaml:"epsilon" mapstructure:"epsilon"`
	CrossedParameters bool    `yaml:"crossed_parameters" mapstructure:"crossed_parameters"`
	Format            string  `yaml:"format" mapstructure:"format"`
	LogLevel          string  `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the reference scenario with exact coincidence checking.
func Default() Config {
	return Config{
		Seg1:              "0,0,0:-1,-1,-1",
		Seg2:              "-1,0,0:0,-1,-1",
		Tolerance:         0,
		Epsilon:           geom.Epsilon,
		CrossedParameters: false,
		Format:            FormatText,
		LogLevel:          "info",
	}
}

// New returns a viper instance preloaded with the defaults and wired to the environment.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("seg1", d.Seg1)
	v.SetDefault("seg2", d.Seg2)
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("epsilon", d.Epsilon)
	v.SetDefault("crossed_parameters", d.CrossedParameters)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads the optional YAML file at path into v and decodes the result.
// Flags bound to v before the call take precedence over the file.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects NaN or negative thresholds, unknown formats and log levels.
func (c Config) Validate() error {
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 {
		return errors.Wrapf(ErrInvalidConfig, "tolerance must be a non-negative number, got %v", c.Tolerance)
	}
	if math.IsNaN(c.Epsilon) || c.Epsilon < 0 {
		return errors.Wrapf(ErrInvalidConfig, "epsilon must be a non-negative number, got %v", c.Epsilon)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown format %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	return level, nil
}

// Segments parses Seg1 and Seg2.
func (c Config) Segments() (geom.Segment, geom.Segment, error) {
	seg1, err := geom.ParseSegment(c.Seg1)
	if err != nil {
		return geom.Segment{}, geom.Segment{}, errors.Wrap(err, "seg1")
	}
	seg2, err := geom.ParseSegment(c.Seg2)
	if err != nil {
		return geom.Segment{}, geom.Segment{}, errors.Wrap(err, "seg2")
	}
	return seg1, seg2, nil
}

// Options returns the numeric settings as geom options.
func (c Config) Options() geom.Options {
	return geom.Options{
		Epsilon:           c.Epsilon,
		Tolerance:         c.Tolerance,
		CrossedParameters: c.CrossedParameters,
	}
}
