// Package config loads socialreach settings from defaults, an optional YAML
// file, a .env file and SOCIALREACH_* environment variables, in that order of
// increasing precedence. Command-line flags are applied by the caller on top.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialreach/ingest"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SOCIALREACH_"

// Defaults.
const (
	DefaultMaxHops   = 3
	DefaultTieBreak  = "lowest-id"
	DefaultCacheSize = 128
	DefaultOutput    = "text"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrMissingInput is returned by RequireInputs when a table path is empty.
	ErrMissingInput = errors.New("config: nodes and edges paths are required")
)

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Config is the full set of run settings.
type Config struct {
	Nodes           string        `yaml:"nodes"`
	Edges           string        `yaml:"edges"`
	Start           string        `yaml:"start"`
	MaxHops         int           `yaml:"max_hops" validate:"gte=0"`
	TieBreak        string        `yaml:"tie_break" validate:"oneof=lowest-id first-seen"`
	CacheSize       int           `yaml:"cache_size" validate:"gte=1"`
	Output          string        `yaml:"output" validate:"oneof=text json"`
	MetricsTextfile string        `yaml:"metrics_textfile"`
	Log             LogConfig     `yaml:"log"`
	Layout          ingest.Layout `yaml:"layout"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxHops:   DefaultMaxHops,
		TieBreak:  DefaultTieBreak,
		CacheSize: DefaultCacheSize,
		Output:    DefaultOutput,
		Log:       LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Layout:    ingest.DefaultLayout(),
	}
}

var validate = validator.New()

// Load builds a Config. An empty path skips the YAML file; a missing .env
// file is ignored.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decodeYAML(raw, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// decodeYAML rejects unknown keys so typos do not pass silently.
func decodeYAML(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// RequireInputs reports ErrMissingInput unless both table paths are set.
func (c *Config) RequireInputs() error {
	if strings.TrimSpace(c.Nodes) == "" || strings.TrimSpace(c.Edges) == "" {
		return ErrMissingInput
	}
	return nil
}

func applyEnv(c *Config) error {
	str := map[string]*string{
		"NODES":            &c.Nodes,
		"EDGES":            &c.Edges,
		"START":            &c.Start,
		"TIE_BREAK":        &c.TieBreak,
		"OUTPUT":           &c.Output,
		"METRICS_TEXTFILE": &c.MetricsTextfile,
		"LOG_LEVEL":        &c.Log.Level,
		"LOG_FORMAT":       &c.Log.Format,
	}
	for name, dst := range str {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		"MAX_HOPS":      &c.MaxHops,
		"CACHE_SIZE":    &c.CacheSize,
		"NODE_NAME_COL": &c.Layout.NodeNameCol,
		"NODE_ID_COL":   &c.Layout.NodeIDCol,
		"EDGE_FROM_COL": &c.Layout.EdgeFromCol,
		"EDGE_TO_COL":   &c.Layout.EdgeToCol,
	}
	for name, dst := range ints {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err)
		}
		*dst = n
	}

	return nil
}
