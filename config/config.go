// Package config loads the YAML configuration of a shapelet extraction run
// and turns it into shapelet search and transform options.
//
// A minimal file:
//
//	search:
//	  candidates: 200
//	  metric_aggs: [sqeuclidean+min]
//	  min_length: 3
//	  seed: 42
//	transform:
//	  workers: 4
//	store:
//	  path: features.duckdb
//	log:
//	  level: debug
//
// Missing keys keep their Default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rshapelet/shapelet"
)

var (
	// ErrNotFound indicates a missing configuration file.
	ErrNotFound = errors.New("config: file not found")

	// ErrParse indicates malformed YAML or an unknown key.
	ErrParse = errors.New("config: parse failed")

	// ErrInvalid indicates a well-formed file with out-of-range values.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the root of the configuration file.
type Config struct {
	Search    SearchConfig    `yaml:"search"`
	Transform TransformConfig `yaml:"transform"`
	Store     StoreConfig     `yaml:"store"`
	Log       LogConfig       `yaml:"log"`
}

// SearchConfig configures the candidate search space.
type SearchConfig struct {
	Candidates  int      `yaml:"candidates"`   // number of candidates to draw
	MetricAggs  []string `yaml:"metric_aggs"`  // "<metric>+<aggregator>" pairs
	MinLength   int      `yaml:"min_length"`   // exclusive, 0 = unset
	MaxLength   int      `yaml:"max_length"`   // exclusive, 0 = unset
	Seed        int64    `yaml:"seed"`         // 0 = package default seed
	MaxAttempts int      `yaml:"max_attempts"` // 0 = derived from candidates
}

// TransformConfig configures the parallel transform.
type TransformConfig struct {
	Workers int `yaml:"workers"`
}

// StoreConfig locates the DuckDB feature store. An empty path disables it.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Candidates: 100,
			MetricAggs: []string{shapelet.DefaultMetricAgg.String()},
		},
		Transform: TransformConfig{
			Workers: 1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads, parses and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// LoadOrDefault is Load, except that an empty path or a missing file yields
// Default().
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}

	return cfg, err
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate reports the first out-of-range value as ErrInvalid.
func (c *Config) Validate() error {
	s := c.Search
	if s.Candidates < 1 {
		return invalidf("search.candidates=%d, want >= 1", s.Candidates)
	}
	if len(s.MetricAggs) == 0 {
		return invalidf("search.metric_aggs is empty")
	}
	for _, raw := range s.MetricAggs {
		if _, err := shapelet.ParseMetricAgg(raw); err != nil {
			return invalidf("search.metric_aggs: %v", err)
		}
	}
	if s.MinLength < 0 || s.MaxLength < 0 {
		return invalidf("search length bounds must be >= 0 (min=%d max=%d)", s.MinLength, s.MaxLength)
	}
	if s.MinLength > 0 && s.MaxLength > 0 && s.MinLength >= s.MaxLength {
		return invalidf("search.min_length=%d >= search.max_length=%d", s.MinLength, s.MaxLength)
	}
	if s.MaxAttempts < 0 {
		return invalidf("search.max_attempts=%d, want >= 0", s.MaxAttempts)
	}
	if c.Transform.Workers < 1 {
		return invalidf("transform.workers=%d, want >= 1", c.Transform.Workers)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return invalidf("log.format=%q, want text or json", c.Log.Format)
	}

	return nil
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// SearchOptions converts the search section into shapelet options.
func (c *Config) SearchOptions() ([]shapelet.Option, error) {
	mas := make([]shapelet.MetricAgg, 0, len(c.Search.MetricAggs))
	for _, raw := range c.Search.MetricAggs {
		ma, err := shapelet.ParseMetricAgg(raw)
		if err != nil {
			return nil, invalidf("search.metric_aggs: %v", err)
		}
		mas = append(mas, ma)
	}

	return []shapelet.Option{
		shapelet.WithMetricAggs(mas...),
		shapelet.WithLengthBounds(c.Search.MinLength, c.Search.MaxLength),
		shapelet.WithSeed(c.Search.Seed),
		shapelet.WithMaxAttempts(c.Search.MaxAttempts),
	}, nil
}

// TransformOptions converts the transform section; Evaluation and Logger are
// left for the caller.
func (c *Config) TransformOptions() shapelet.TransformOptions {
	opts := shapelet.DefaultTransformOptions()
	opts.Workers = c.Transform.Workers

	return opts
}

// NewLogger builds the slog logger described by the log section.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, invalidf("log.level=%q", s)
	}

	return level, nil
}
