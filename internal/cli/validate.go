package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vvka-141/croissant/internal/files/filesystem"
	"github.com/vvka-141/croissant/internal/logging"
	"github.com/vvka-141/croissant/internal/tui"
	"github.com/vvka-141/croissant/internal/validation"
	"github.com/vvka-141/croissant/pkg/croissant"
)

var validateCmd = &cobra.Command{
	Use:   "validate <metadata.json|dir>...",
	Short: "Validate Croissant metadata documents",
	Long: `Check Croissant JSON-LD documents for missing or mistyped properties and
for fields that reference unknown distributions.

Directories are searched recursively for *.json files. Documents are validated
concurrently; results are printed in argument order.

A document with errors fails validation. With --strict warnings fail it too.

Examples:
  croissant validate people.json
  croissant validate ./published --strict
  croissant validate a.json b.json --json`,
	Args: RequireDocumentPaths,
	RunE: runValidate,
}

type validateFlagValues struct {
	json     bool
	strict   bool
	parallel int
}

var validateFlags validateFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.json, "json", false,
		"Print results as JSON")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false,
		"Treat warnings as failures")
	validateCmd.Flags().IntVar(&validateFlags.parallel, "parallel", 0,
		"Maximum documents validated at once (default: number of CPUs)")
}

// documentReport is the JSON rendering of one validated document.
type documentReport struct {
	Path   string             `json:"path"`
	Valid  bool               `json:"valid"`
	Error  string             `json:"error,omitempty"`
	Issues *validation.Issues `json:"issues,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag()
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	projectCfg, err := loadProjectConfig(rootFlags.configPath)
	if err != nil {
		return err
	}

	format := projectCfg.Validate.Format
	if validateFlags.json {
		format = croissant.OutputJSON.String()
	}
	outputFormat, err := croissant.ParseOutputFormat(format)
	if err != nil {
		return err
	}

	cfg := croissant.ValidateConfig{
		Paths:       args,
		Strict:      validateFlags.strict || projectCfg.Validate.Strict,
		Format:      outputFormat,
		Parallelism: validateFlags.parallel,
		Verbose:     verbose,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := validateDocuments(ctx, cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Format == croissant.OutputJSON {
		if err := writeJSONResults(out, results, cfg.Strict); err != nil {
			return err
		}
	} else {
		color := false
		if f, ok := out.(*os.File); ok {
			color = tui.ColorEnabled(f)
		}
		writeTextResults(out, tui.NewReportRenderer(color), results, cfg.Strict)
	}

	return resultsError(results, cfg.Strict)
}

func validateDocuments(ctx context.Context, cfg croissant.ValidateConfig, logger croissant.Logger) ([]validation.Result, error) {
	v := validation.NewValidator(filesystem.NewOSFileSystem(), logger, cfg.Parallelism)

	paths, err := v.Discover(cfg.Paths)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no metadata documents found in %v: %w", cfg.Paths, croissant.ErrDocumentNotFound)
	}

	return v.ValidateAll(ctx, paths)
}

func writeTextResults(out io.Writer, r *tui.ReportRenderer, results []validation.Result, strict bool) {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if res.Err != nil {
			fmt.Fprintln(out, r.LoadFailure(res.Path, res.Err))
			continue
		}
		fmt.Fprintln(out, r.Summary(res.Path, res.Issues, strict))
		if report := r.Report(res.Issues); report != "" {
			fmt.Fprintln(out, report)
		}
	}
}

func writeJSONResults(out io.Writer, results []validation.Result, strict bool) error {
	reports := make([]documentReport, 0, len(results))
	for _, res := range results {
		report := documentReport{
			Path:   res.Path,
			Valid:  !res.Failed(strict),
			Issues: res.Issues,
		}
		if res.Err != nil {
			report.Error = res.Err.Error()
		}
		reports = append(reports, report)
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

// resultsError maps the run outcome to an error. Unloadable documents take
// precedence over documents that loaded but failed validation.
func resultsError(results []validation.Result, strict bool) error {
	var loadFailures, failed int
	var firstLoadErr error
	for _, res := range results {
		switch {
		case res.Err != nil:
			loadFailures++
			if firstLoadErr == nil {
				firstLoadErr = res.Err
			}
		case res.Failed(strict):
			failed++
		}
	}

	switch {
	case loadFailures > 0:
		return fmt.Errorf("%d of %d document(s) could not be loaded: %w", loadFailures, len(results), firstLoadErr)
	case failed > 0:
		return fmt.Errorf("%d of %d document(s) did not validate: %w", failed, len(results), croissant.ErrValidationFailed)
	}
	return nil
}
