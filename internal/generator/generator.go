package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/vvka-141/croissant/internal/checksum"
	"github.com/vvka-141/croissant/internal/csvfile"
	"github.com/vvka-141/croissant/internal/files/filesystem"
	"github.com/vvka-141/croissant/internal/fsutil"
	"github.com/vvka-141/croissant/internal/metadata"
	"github.com/vvka-141/croissant/pkg/croissant"
)

// Generator builds metadata documents from CSV files.
type Generator struct {
	fs       filesystem.FileSystemProvider
	checksum checksum.Calculator
	logger   croissant.Logger
	now      func() time.Time
	progress func(stage string)
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock sets the clock used for datePublished.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithChecksum replaces the SHA-256 calculator.
func WithChecksum(c checksum.Calculator) Option {
	return func(g *Generator) { g.checksum = c }
}

// WithProgress registers a callback told about each generation stage.
func WithProgress(fn func(stage string)) Option {
	return func(g *Generator) { g.progress = fn }
}

// New creates a Generator reading through fsys.
func New(fsys filesystem.FileSystemProvider, logger croissant.Logger, opts ...Option) *Generator {
	g := &Generator{
		fs:       fsys,
		checksum: checksum.New(),
		logger:   logger,
		now:      time.Now,
		progress: func(string) {},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate describes cfg.InputPath and, when cfg.OutputPath is set, writes
// the document there.
func (g *Generator) Generate(cfg croissant.GenerateConfig) (*metadata.Metadata, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()

	info, err := g.fs.Stat(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", cfg.InputPath, err, croissant.ErrInputNotFound)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", cfg.InputPath, croissant.ErrInputNotFound)
	}

	fileName := filepath.Base(cfg.InputPath)
	if ext := fsutil.FileExtension(fileName); ext != "csv" {
		g.logger.Warn("%s does not have a .csv extension; reading it as CSV anyway", fileName)
	}
	g.logger.Verbose("Reading %s (%s)", cfg.InputPath, fsutil.FormatFileSize(info.Size()))

	g.progress("Hashing " + fileName)
	digest, err := g.hash(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	g.logger.Verbose("SHA-256: %s", digest)

	g.progress("Reading columns of " + fileName)
	headers, firstRow, err := g.columns(cfg.InputPath, cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	if firstRow == nil {
		g.logger.Warn("%s has no data rows; every field is typed %s", fileName, croissant.DataTypeText)
	}
	g.logger.Verbose("Found %d column(s)", len(headers))

	published := cfg.Published
	if published.IsZero() {
		published = g.now()
	}

	m := &metadata.Metadata{
		Context:       metadata.DefaultContext(),
		Type:          croissant.TypeDataset,
		Name:          strings.TrimSuffix(fileName, filepath.Ext(fileName)) + "_dataset",
		Description:   "Dataset created from " + fileName,
		ConformsTo:    cfg.ConformsTo,
		DatePublished: published.UTC().Format(croissant.DatePublishedLayout),
		Version:       cfg.Version,
		Identifier:    metadata.DatasetIdentifier(digest),
		Distributions: []metadata.Distribution{{
			ID:             fileName,
			Type:           croissant.TypeFileObject,
			Name:           fileName,
			ContentSize:    fmt.Sprintf("%d B", info.Size()),
			ContentURL:     fileName,
			EncodingFormat: cfg.EncodingFormat,
			SHA256:         digest,
		}},
		RecordSets: []metadata.RecordSet{{
			ID:          cfg.RecordSetName,
			Type:        croissant.TypeRecordSet,
			Name:        cfg.RecordSetName,
			Description: "Records from " + fileName,
			Fields:      buildFields(cfg.RecordSetName, fileName, headers, firstRow),
		}},
	}

	if cfg.OutputPath != "" {
		g.progress("Writing " + cfg.OutputPath)
		if err := fsutil.ValidateOutputPath(cfg.OutputPath); err != nil {
			return nil, err
		}
		if err := metadata.Write(cfg.OutputPath, m); err != nil {
			return nil, fmt.Errorf("%v: %w", err, croissant.ErrInvalidOutputPath)
		}
		g.logger.Verbose("Wrote %s", cfg.OutputPath)
	}

	return m, nil
}

func (g *Generator) hash(path string) (string, error) {
	rc, err := g.fs.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: %v: %w", path, err, croissant.ErrInputNotFound)
	}
	defer rc.Close()

	digest, err := g.checksum.CalculateReader(rc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return digest, nil
}

func (g *Generator) columns(path string, delimiter rune) ([]string, []string, error) {
	rc, err := g.fs.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v: %w", path, err, croissant.ErrInputNotFound)
	}
	defer rc.Close()

	headers, firstRow, err := csvfile.ReadColumns(rc, csvfile.Options{Delimiter: delimiter})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := csvfile.CheckHeaders(headers); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return headers, firstRow, nil
}

func buildFields(recordSet, fileName string, headers, firstRow []string) []metadata.Field {
	fields := make([]metadata.Field, 0, len(headers))
	for i, header := range headers {
		dataType := croissant.DataTypeText
		if i < len(firstRow) {
			dataType = InferDataType(firstRow[i])
		}

		fields = append(fields, metadata.Field{
			ID:          recordSet + "/" + header,
			Type:        croissant.TypeField,
			Name:        header,
			Description: "Field for " + header,
			DataType:    dataType,
			Source: metadata.FieldSource{
				Extract:    metadata.Extract{Column: header},
				FileObject: metadata.FileObject{ID: fileName},
			},
		})
	}
	return fields
}
