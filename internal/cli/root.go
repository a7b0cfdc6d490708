package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "croissant",
	Short: "Tools for generating and validating Croissant metadata",
	Long: `croissant describes CSV datasets with Croissant JSON-LD metadata and checks
existing metadata documents for structural and referential problems.

Configuration is read from croissant.yaml in the working directory (or --config),
then overridden by CROISSANT_* environment variables (a .env file is loaded
first), then by command-line flags.

Exit Codes:
  0  - Success
  1  - General error (metadata generation failed)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Validation found errors (or warnings with --strict)
  21 - Metadata document missing or unparseable`,
	SilenceUsage: true,
}

type rootFlagValues struct {
	verbose    bool
	configPath string
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for croissant")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "",
		"Path to a config file (default: ./croissant.yaml when present)")
}

// getVerboseFlag reports whether --verbose was given.
func getVerboseFlag() bool {
	return rootFlags.verbose
}
