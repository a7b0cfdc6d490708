package croissant

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// GenerateConfig contains all parameters needed to generate metadata from a CSV file.
type GenerateConfig struct {
	// InputPath is the CSV file to describe
	InputPath string

	// OutputPath is where the JSON-LD document is written. Empty means not written.
	OutputPath string

	// RecordSetName names the record set; defaults to DefaultRecordSetName
	RecordSetName string

	// Version is the dataset version; defaults to DefaultVersion
	Version string

	// ConformsTo identifies the Croissant specification version; defaults to DefaultConformsTo
	ConformsTo string

	// EncodingFormat is the MIME type of the distribution; defaults to DefaultEncodingFormat
	EncodingFormat string

	// Delimiter separates CSV cells; zero means comma
	Delimiter rune

	// Published overrides the datePublished value; zero means today
	Published time.Time

	// Verbose enables detailed logging
	Verbose bool
}

// WithDefaults returns a copy of the config with empty optional fields filled in.
func (c GenerateConfig) WithDefaults() GenerateConfig {
	if c.RecordSetName == "" {
		c.RecordSetName = DefaultRecordSetName
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.ConformsTo == "" {
		c.ConformsTo = DefaultConformsTo
	}
	if c.EncodingFormat == "" {
		c.EncodingFormat = DefaultEncodingFormat
	}
	if c.Delimiter == 0 {
		c.Delimiter = ','
	}
	return c
}

// Validate checks if the GenerateConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if c.InputPath == "" {
		errs = append(errs, fmt.Errorf("InputPath is required: %w", ErrInvalidConfig))
	}

	if c.Delimiter != 0 && (c.Delimiter == '"' || c.Delimiter == '\r' || c.Delimiter == '\n' ||
		!utf8.ValidRune(c.Delimiter) || c.Delimiter == utf8.RuneError) {
		errs = append(errs, fmt.Errorf("delimiter %q is not usable: %w", c.Delimiter, ErrInvalidConfig))
	}

	if c.OutputPath != "" && c.OutputPath == c.InputPath {
		errs = append(errs, fmt.Errorf("output path must differ from the input path: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// OutputFormat selects how validation results are rendered.
type OutputFormat int

const (
	OutputText OutputFormat = iota // Human-readable report
	OutputJSON                     // Machine-readable JSON
)

// String returns the config-file spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case OutputText:
		return "text"
	case OutputJSON:
		return "json"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// ParseOutputFormat parses "text" or "json". An empty string means text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return OutputText, fmt.Errorf("unknown output format %q (want text or json): %w", s, ErrInvalidConfig)
	}
}

// ValidateConfig contains all parameters needed for a validation run.
type ValidateConfig struct {
	// Paths are metadata documents or directories containing them
	Paths []string

	// Strict treats warnings as a failed validation
	Strict bool

	// Format selects the report rendering
	Format OutputFormat

	// Parallelism bounds concurrent document validation; zero means one per CPU
	Parallelism int

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ValidateConfig has all required fields and valid values.
func (c *ValidateConfig) Validate() error {
	var errs []error

	if len(c.Paths) == 0 {
		errs = append(errs, fmt.Errorf("at least one path is required: %w", ErrInvalidConfig))
	}
	for i, p := range c.Paths {
		if p == "" {
			errs = append(errs, fmt.Errorf("path %d is empty: %w", i, ErrInvalidConfig))
		}
	}

	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Format != OutputText && c.Format != OutputJSON {
		errs = append(errs, fmt.Errorf("unsupported output format %s: %w", c.Format, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
