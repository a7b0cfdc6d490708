package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/vvka-141/croissant/pkg/croissant"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type GenerateConfig struct {
	Version        string `yaml:"version,omitempty"`
	ConformsTo     string `yaml:"conforms_to,omitempty"`
	RecordSet      string `yaml:"record_set,omitempty"`
	EncodingFormat string `yaml:"encoding_format,omitempty"`
}

type CSVConfig struct {
	Delimiter string `yaml:"delimiter,omitempty"`
}

type ValidateConfig struct {
	Strict bool   `yaml:"strict"`
	Format string `yaml:"format,omitempty"`
}

type ProjectConfig struct {
	Generate GenerateConfig `yaml:"generate"`
	CSV      CSVConfig      `yaml:"csv"`
	Validate ValidateConfig `yaml:"validate"`
}

const ConfigFileName = "croissant.yaml"

// Environment variables that override the file.
const (
	EnvVersion    = "CROISSANT_VERSION"
	EnvConformsTo = "CROISSANT_CONFORMS_TO"
	EnvRecordSet  = "CROISSANT_RECORD_SET"
)

// Load reads croissant.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads the config file at path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", path, err, croissant.ErrInvalidConfig)
	}
	if _, err := cfg.CSV.Rune(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := croissant.ParseOutputFormat(cfg.Validate.Format); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides generate settings with non-empty environment values.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) {
	override := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	override(EnvVersion, &c.Generate.Version)
	override(EnvConformsTo, &c.Generate.ConformsTo)
	override(EnvRecordSet, &c.Generate.RecordSet)
}

// Rune returns the configured delimiter, zero when unset. "tab" and "\t"
// both mean a tab character.
func (c CSVConfig) Rune() (rune, error) {
	switch c.Delimiter {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size != len(c.Delimiter) || r == utf8.RuneError {
		return 0, fmt.Errorf("csv.delimiter must be a single character, got %q: %w", c.Delimiter, croissant.ErrInvalidConfig)
	}
	return r, nil
}
