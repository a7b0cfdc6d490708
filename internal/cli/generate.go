package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/croissant/internal/config"
	"github.com/vvka-141/croissant/internal/files/filesystem"
	"github.com/vvka-141/croissant/internal/fsutil"
	"github.com/vvka-141/croissant/internal/generator"
	"github.com/vvka-141/croissant/internal/logging"
	"github.com/vvka-141/croissant/internal/metadata"
	"github.com/vvka-141/croissant/internal/tui"
	"github.com/vvka-141/croissant/internal/ui"
	"github.com/vvka-141/croissant/pkg/croissant"
)

var generateCmd = &cobra.Command{
	Use:   "generate <input_csv>",
	Short: "Generate Croissant metadata for a CSV file",
	Long: `Describe a CSV file as a Croissant JSON-LD document.

The file is hashed with SHA-256, its header row becomes the record set fields,
and the first data row is used to infer each field's data type. With -o the
document is written to that file; without it the document is printed to stdout.

Values are resolved in this order (highest first): flags, CROISSANT_*
environment variables, croissant.yaml, built-in defaults.

Examples:
  croissant generate data/people.csv -o people.json
  croissant generate data/people.tsv --delimiter tab --record-set people
  croissant generate data/people.csv > people.json`,
	Args: RequireInputFile,
	RunE: runGenerate,
}

type generateFlagValues struct {
	output         string
	recordSet      string
	datasetVersion string
	conformsTo     string
	encodingFormat string
	delimiter      string
	published      string
	force          bool
}

var generateFlags generateFlagValues

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "",
		"Write the document to this file instead of stdout")
	generateCmd.Flags().StringVar(&generateFlags.recordSet, "record-set", "",
		"Name of the record set (default \"main\")")
	generateCmd.Flags().StringVar(&generateFlags.datasetVersion, "dataset-version", "",
		"Dataset version to record (default \"1.0.0\")")
	generateCmd.Flags().StringVar(&generateFlags.conformsTo, "conforms-to", "",
		"Croissant specification URI the document conforms to")
	generateCmd.Flags().StringVar(&generateFlags.encodingFormat, "encoding-format", "",
		"MIME type of the distribution (default \"text/csv\")")
	generateCmd.Flags().StringVar(&generateFlags.delimiter, "delimiter", "",
		"CSV delimiter: a single character or \"tab\" (default \",\")")
	generateCmd.Flags().StringVar(&generateFlags.published, "date-published", "",
		"Publication date as YYYY-MM-DD (default today)")
	generateCmd.Flags().BoolVarP(&generateFlags.force, "force", "f", false,
		"Overwrite an existing output file without asking")
}

// runGenerate reports every failure as a generation failure, so the command
// exits 1 whatever the cause.
func runGenerate(cmd *cobra.Command, args []string) error {
	if err := generateMetadata(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", croissant.ErrGenerationFailed, err)
	}
	return nil
}

func generateMetadata(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag()
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	projectCfg, err := loadProjectConfig(rootFlags.configPath)
	if err != nil {
		return err
	}

	cfg, err := buildGenerateConfig(args[0], generateFlags, projectCfg)
	if err != nil {
		return err
	}
	cfg.Verbose = verbose

	if !fsutil.IsFileReadable(cfg.InputPath) {
		return fmt.Errorf("%s is not a readable file: %w", cfg.InputPath, croissant.ErrInputNotFound)
	}

	if cfg.OutputPath != "" {
		if err := confirmOverwrite(cmd, cfg.OutputPath, generateFlags.force, verbose); err != nil {
			return err
		}
	}

	if verbose {
		if abs, err := fsutil.NormalizePath(cfg.InputPath); err == nil {
			logger.Verbose("Input: %s", abs)
		}
		if info, err := os.Stat(cfg.InputPath); err == nil {
			logger.Verbose("Input size: %s", fsutil.FormatFileSize(info.Size()))
		}
	}

	var doc *metadata.Metadata
	work := func(progress func(string)) (string, error) {
		gen := generator.New(filesystem.NewOSFileSystem(), logger, generator.WithProgress(progress))
		m, err := gen.Generate(cfg)
		if err != nil {
			return "", err
		}
		doc = m
		return fmt.Sprintf("Described %s", filepath.Base(cfg.InputPath)), nil
	}

	// The spinner would interleave with verbose log lines
	if verbose {
		_, err = work(func(stage string) { logger.Verbose("%s", stage) })
	} else {
		err = tui.RunWithSpinner("Generating Croissant metadata", work)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.OutputPath != "" {
		fmt.Fprintf(out, "Croissant metadata generated and saved to: %s\n", cfg.OutputPath)
		return nil
	}

	data, err := metadata.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// confirmOverwrite asks before replacing an existing output file. Without a
// terminal the file is replaced, as with --force.
func confirmOverwrite(cmd *cobra.Command, path string, force, verbose bool) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	var approver croissant.Approver
	if force || !tui.IsInteractive() {
		approver = ui.NewForcedApprover(verbose)
	} else {
		approver = ui.NewInteractiveApprover(verbose)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	approved, err := approver.RequestApproval(ctx, path)
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !approved {
		return fmt.Errorf("refusing to overwrite %s: %w", path, croissant.ErrInvalidOutputPath)
	}
	return nil
}

// buildGenerateConfig resolves every generate setting from flags and the
// project config. Defaults for anything left empty are applied by the generator.
func buildGenerateConfig(input string, flags generateFlagValues, projectCfg *config.ProjectConfig) (croissant.GenerateConfig, error) {
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	}

	cfg := croissant.GenerateConfig{
		InputPath:      input,
		OutputPath:     flags.output,
		RecordSetName:  firstNonEmpty(flags.recordSet, projectCfg.Generate.RecordSet),
		Version:        firstNonEmpty(flags.datasetVersion, projectCfg.Generate.Version),
		ConformsTo:     firstNonEmpty(flags.conformsTo, projectCfg.Generate.ConformsTo),
		EncodingFormat: firstNonEmpty(flags.encodingFormat, projectCfg.Generate.EncodingFormat),
	}

	delimiter, err := config.CSVConfig{
		Delimiter: firstNonEmpty(flags.delimiter, projectCfg.CSV.Delimiter),
	}.Rune()
	if err != nil {
		return cfg, err
	}
	cfg.Delimiter = delimiter

	if flags.published != "" {
		published, err := time.Parse(croissant.DatePublishedLayout, flags.published)
		if err != nil {
			return cfg, fmt.Errorf("--date-published must be YYYY-MM-DD, got %q: %w", flags.published, croissant.ErrInvalidConfig)
		}
		cfg.Published = published
	}

	return cfg, nil
}
