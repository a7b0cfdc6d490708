package croissant

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Structural and I/O failures are reported through these errors. Schema
// non-compliance is never an error value; it is collected as validation issues.
//
// Example usage:
//
//	_, err := generator.Generate(cfg)
//	if errors.Is(err, croissant.ErrInvalidCSV) {
//	    // Handle a CSV file with empty or duplicate headers
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInputNotFound indicates the CSV input file does not exist or cannot be read.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInvalidCSV indicates the CSV input has no headers, an empty header or duplicate headers.
	ErrInvalidCSV = errors.New("invalid CSV file")

	// ErrDocumentNotFound indicates a metadata document could not be read.
	ErrDocumentNotFound = errors.New("metadata document not found")

	// ErrDocumentParse indicates a metadata document is not valid JSON or does not
	// have the shape of a Croissant document.
	ErrDocumentParse = errors.New("metadata document could not be parsed")

	// ErrInvalidOutputPath indicates the output path cannot be created or written.
	ErrInvalidOutputPath = errors.New("invalid output path")

	// ErrValidationFailed indicates a document was read but does not conform.
	ErrValidationFailed = errors.New("validation failed")

	// ErrGenerationFailed marks any failure of the generate command, whatever
	// its cause. It always maps to ExitGeneralError.
	ErrGenerationFailed = errors.New("error generating metadata")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrGenerationFailed):
		return ExitGeneralError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrDocumentNotFound), errors.Is(err, ErrDocumentParse):
		return ExitDocumentError
	}

	// Cobra reports usage problems as plain errors
	if isUsageError(err.Error()) {
		return ExitUsageError
	}

	return ExitGeneralError
}

var usageErrorPrefixes = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

func isUsageError(msg string) bool {
	for _, p := range usageErrorPrefixes {
		if strings.HasPrefix(msg, p) {
			return true
		}
	}
	return false
}
