package actlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

// Config describes a backend and formatter combination resolvable from
// a file or a settings map. It deliberately stops short of backend
// lifecycle management: outputs are limited to the process streams and
// discard, so there is nothing to open or close.
type Config struct {
	// Backend selects the backend kind: "writer" (default), "log",
	// "zerolog", "logrus", or "nop".
	Backend string `yaml:"backend"`

	// Output selects the sink: "stdout" (default), "stderr", or
	// "discard".
	Output string `yaml:"output"`

	// Severity is the default severity formatted records are emitted
	// at. Empty means "info".
	Severity string `yaml:"severity"`

	// MinSeverity is the writer backend's filter threshold. Empty means
	// "info". Ignored by the other backend kinds, which filter
	// themselves.
	MinSeverity string `yaml:"min_severity"`

	// OmitTimestamp selects the template family without an embedded
	// timestamp.
	OmitTimestamp bool `yaml:"omit_timestamp"`

	// NoColor forces the writer backend's colour off.
	NoColor bool `yaml:"no_color"`

	// Separator overrides; empty values keep the defaults.
	PairSeparator     string `yaml:"pair_separator"`
	KeyValueSeparator string `yaml:"key_value_separator"`
	SectionSeparator  string `yaml:"section_separator"`
}

// LoadError is the uniform load failure returned by LoadConfig. It
// names the offending path and wraps the original cause.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("actlog: loading configuration from %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SettingsError reports a structurally invalid settings object handed
// to ConfigFromMap, wrapping the cause.
type SettingsError struct {
	Err error
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("actlog: invalid settings: %v", e.Err)
}

func (e *SettingsError) Unwrap() error { return e.Err }

// LoadConfig reads a configuration file. Paths ending in ".yaml" or
// ".yml" must parse as YAML or the load fails. Any other path is tried
// as YAML first and falls back to a flat key/section (INI) format with
// the keys in an [actlog] section. Unreadable paths and parse failures
// in both formats surface as a single *LoadError carrying the original
// cause.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	forceYAML := strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
	cfg, yamlErr := parseYAMLConfig(data)
	if yamlErr == nil {
		return cfg, nil
	}
	if forceYAML {
		return nil, &LoadError{Path: path, Err: errors.WithMessage(yamlErr, "cannot parse as YAML")}
	}
	cfg, flatErr := parseFlatConfig(data)
	if flatErr != nil {
		return nil, &LoadError{
			Path: path,
			Err:  errors.WithMessagef(flatErr, "cannot parse as either YAML (%v) or flat key/section format", yamlErr),
		}
	}
	return cfg, nil
}

// ConfigFromMap resolves a structured settings object, typically the
// result of deserialising a larger application configuration. A
// structurally invalid map surfaces as a *SettingsError.
func ConfigFromMap(settings map[string]any) (*Config, error) {
	if settings == nil {
		return nil, &SettingsError{Err: errors.New("nil settings map")}
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return nil, &SettingsError{Err: err}
	}
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, &SettingsError{Err: err}
	}
	if err := cfg.validate(); err != nil {
		return nil, &SettingsError{Err: err}
	}
	return &cfg, nil
}

func parseYAMLConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parseFlatConfig reads the flat key/section fallback format through
// viper's INI support. Keys may live in an [actlog] section or at the
// top level.
func parseFlatConfig(data []byte) (*Config, error) {
	v := viper.New()
	v.SetConfigType("ini")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	var cfg Config
	cfg.Backend = flatString(v, "backend")
	cfg.Output = flatString(v, "output")
	cfg.Severity = flatString(v, "severity")
	cfg.MinSeverity = flatString(v, "min_severity")
	cfg.PairSeparator = flatString(v, "pair_separator")
	cfg.KeyValueSeparator = flatString(v, "key_value_separator")
	cfg.SectionSeparator = flatString(v, "section_separator")
	var err error
	if cfg.OmitTimestamp, err = flatBool(v, "omit_timestamp"); err != nil {
		return nil, err
	}
	if cfg.NoColor, err = flatBool(v, "no_color"); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func flatString(v *viper.Viper, key string) string {
	for _, full := range []string{"actlog." + key, "default." + key, key} {
		if v.IsSet(full) {
			return v.GetString(full)
		}
	}
	return ""
}

func flatBool(v *viper.Viper, key string) (bool, error) {
	raw := flatString(v, key)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.WithMessagef(err, "key %q", key)
	}
	return value, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case "", "writer", "log", "zerolog", "logrus", "nop":
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Output {
	case "", "stdout", "stderr", "discard":
	default:
		return errors.Errorf("unknown output %q (sink lifecycle is not managed here)", c.Output)
	}
	if c.Severity != "" {
		if _, ok := ParseSeverity(c.Severity); !ok {
			return errors.Errorf("unknown severity %q", c.Severity)
		}
	}
	if c.MinSeverity != "" {
		if _, ok := ParseSeverity(c.MinSeverity); !ok {
			return errors.Errorf("unknown min_severity %q", c.MinSeverity)
		}
	}
	return nil
}

// Formatter resolves the configuration into a Backend and builds a
// Formatter over it.
func (c *Config) Formatter() (*Formatter, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	w, err := c.writer()
	if err != nil {
		return nil, err
	}
	sev, _ := ParseSeverity(c.Severity)
	minSev, _ := ParseSeverity(c.MinSeverity)
	var backend Backend
	switch c.Backend {
	case "", "writer":
		backend = NewWriterBackendWithOptions(w, WriterBackendOptions{
			MinSeverity: minSev,
			NoColor:     c.NoColor,
		})
	case "log":
		backend = NewLogBackend(log.New(w, "", log.LstdFlags))
	case "zerolog":
		backend = NewZerologBackend(zerolog.New(w))
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		backend = NewLogrusBackend(l)
	case "nop":
		backend = NopBackend{}
	}
	return NewWithOptions(Options{
		Backend:           backend,
		Severity:          sev,
		OmitTimestamp:     c.OmitTimestamp,
		PairSeparator:     c.PairSeparator,
		KeyValueSeparator: c.KeyValueSeparator,
		SectionSeparator:  c.SectionSeparator,
	}), nil
}

func (c *Config) writer() (io.Writer, error) {
	switch c.Output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "discard":
		return io.Discard, nil
	default:
		return nil, errors.Errorf("unknown output %q", c.Output)
	}
}
