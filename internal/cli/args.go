package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireInputFile validates that exactly one input_csv argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireInputFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <input_csv>

Usage: %s

Example:
  %s ./data/people.csv -o people.json`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireDocumentPaths validates that at least one document or directory is given.
func RequireDocumentPaths(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <metadata.json|dir>

Usage: %s

Example:
  %s people.json ./published --strict`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
