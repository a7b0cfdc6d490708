package validation

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/vvka-141/croissant/internal/files/filesystem"
	"github.com/vvka-141/croissant/internal/fsutil"
	"github.com/vvka-141/croissant/internal/metadata"
	"github.com/vvka-141/croissant/pkg/croissant"
	"golang.org/x/sync/errgroup"
)

// ValidateFile loads the document at path and validates it. A document that
// cannot be loaded is returned as an error, never as an issue.
func ValidateFile(fsys filesystem.FileSystemProvider, path string) (*Issues, error) {
	m, err := metadata.Load(fsys, path)
	if err != nil {
		return nil, err
	}
	return Validate(m), nil
}

// Result is the outcome of validating one document.
type Result struct {
	Path   string
	Issues *Issues // nil when Err is set
	Err    error   // load failure or interruption
}

// Failed reports whether the document failed validation. In strict mode
// warnings count as failures too. A document that was never validated fails.
func (r Result) Failed(strict bool) bool {
	if r.Err != nil || r.Issues == nil {
		return true
	}
	if r.Issues.HasErrors() {
		return true
	}
	return strict && r.Issues.HasWarnings()
}

// Validator validates documents read through a filesystem provider.
type Validator struct {
	fs          filesystem.FileSystemProvider
	logger      croissant.Logger
	parallelism int
}

// NewValidator creates a Validator. A parallelism below one means one
// document per CPU.
func NewValidator(fsys filesystem.FileSystemProvider, logger croissant.Logger, parallelism int) *Validator {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}
	return &Validator{fs: fsys, logger: logger, parallelism: parallelism}
}

// Validate validates the single document at path.
func (v *Validator) Validate(path string) (*Issues, error) {
	v.logger.Verbose("Validating %s", path)
	issues, err := ValidateFile(v.fs, path)
	if err != nil {
		v.logger.Verbose("Could not load %s: %v", path, err)
		return nil, err
	}
	v.logger.Verbose("%s: %d error(s), %d warning(s)", path, issues.ErrorCount(), issues.WarningCount())
	return issues, nil
}

// ValidateAll validates every document concurrently, each with its own
// collector. Results are returned in the order of paths. Load failures are
// reported per result; the returned error is only set when ctx is done, and
// documents skipped because of it carry the context error.
func (v *Validator) ValidateAll(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.parallelism)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Path: path, Err: err}
				return err
			}
			issues, err := v.Validate(path)
			results[i] = Result{Path: path, Issues: issues, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("validation interrupted: %w", err)
	}
	return results, nil
}

// Discover expands paths into the documents to validate. Files are taken as
// given; directories are walked for *.json files in lexical order. The
// result has no duplicates and keeps the order of first appearance.
func (v *Validator) Discover(paths []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, p := range paths {
		info, err := v.fs.Stat(p)
		if err != nil {
			// Left for the loader to report per document
			add(p)
			continue
		}
		if !info.IsDir() {
			add(p)
			continue
		}

		dir, err := v.fs.Open(p)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", p, err)
		}

		var found []string
		err = dir.Walk(func(f filesystem.File, err error) error {
			if err != nil {
				return err
			}
			if f.Info().IsDir() || fsutil.FileExtension(f.Path()) != "json" {
				return nil
			}
			found = append(found, f.Path())
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", p, err)
		}

		sort.Strings(found)
		v.logger.Verbose("Found %d document(s) in %s", len(found), p)
		for _, f := range found {
			add(f)
		}
	}

	return out, nil
}
