package generator

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/croissant/internal/checksum"
	"github.com/vvka-141/croissant/internal/files/filesystem"
	"github.com/vvka-141/croissant/internal/logging"
	"github.com/vvka-141/croissant/internal/metadata"
	"github.com/vvka-141/croissant/internal/validation"
	"github.com/vvka-141/croissant/pkg/croissant"
)

const peopleCSV = "id,age,active\n1,23,true\n2,31,false\n"

var fixedNow = func() time.Time { return time.Date(2024, 5, 1, 22, 30, 0, 0, time.UTC) }

func newGenerator(t *testing.T, files map[string]string, opts ...Option) *Generator {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/data")
	for name, content := range files {
		mfs.AddFile(name, content)
	}
	return New(mfs, logging.NewNullLogger(), append([]Option{WithClock(fixedNow)}, opts...)...)
}

func TestGenerate_Document(t *testing.T) {
	g := newGenerator(t, map[string]string{"people.csv": peopleCSV})

	m, err := g.Generate(croissant.GenerateConfig{InputPath: "/data/people.csv"})
	require.NoError(t, err)

	digest := checksum.New().CalculateRaw([]byte(peopleCSV))
	source := func(column string) metadata.FieldSource {
		return metadata.FieldSource{
			Extract:    metadata.Extract{Column: column},
			FileObject: metadata.FileObject{ID: "people.csv"},
		}
	}

	expected := &metadata.Metadata{
		Context:       metadata.DefaultContext(),
		Type:          "sc:Dataset",
		Name:          "people_dataset",
		Description:   "Dataset created from people.csv",
		ConformsTo:    "http://mlcommons.org/croissant/1.0",
		DatePublished: "2024-05-01",
		Version:       "1.0.0",
		Identifier:    metadata.DatasetIdentifier(digest),
		Distributions: []metadata.Distribution{{
			ID:             "people.csv",
			Type:           "cr:FileObject",
			Name:           "people.csv",
			ContentSize:    "35 B",
			ContentURL:     "people.csv",
			EncodingFormat: "text/csv",
			SHA256:         digest,
		}},
		RecordSets: []metadata.RecordSet{{
			ID:          "main",
			Type:        "cr:RecordSet",
			Name:        "main",
			Description: "Records from people.csv",
			Fields: []metadata.Field{
				{ID: "main/id", Type: "cr:Field", Name: "id", Description: "Field for id", DataType: "sc:Integer", Source: source("id")},
				{ID: "main/age", Type: "cr:Field", Name: "age", Description: "Field for age", DataType: "sc:Integer", Source: source("age")},
				{ID: "main/active", Type: "cr:Field", Name: "active", Description: "Field for active", DataType: "sc:Boolean", Source: source("active")},
			},
		}},
	}

	if diff := deep.Equal(m, expected); diff != nil {
		t.Error(diff)
	}
}

func TestGenerate_ValidatesClean(t *testing.T) {
	g := newGenerator(t, map[string]string{"people.csv": peopleCSV})

	m, err := g.Generate(croissant.GenerateConfig{InputPath: "/data/people.csv"})
	require.NoError(t, err)

	issues := validation.Validate(m)
	assert.Equal(t, 0, issues.ErrorCount(), issues.Report())
	assert.Equal(t, 0, issues.WarningCount(), issues.Report())
}

func TestGenerate_RoundTripThroughFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "meta", "people.json")

	g := newGenerator(t, map[string]string{"people.csv": peopleCSV})
	m, err := g.Generate(croissant.GenerateConfig{InputPath: "/data/people.csv", OutputPath: out})
	require.NoError(t, err)

	issues, err := validation.ValidateFile(filesystem.NewOSFileSystem(), out)
	require.NoError(t, err)
	assert.True(t, issues.IsEmpty(), issues.Report())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	reloaded, err := metadata.Parse(data)
	require.NoError(t, err)

	m.Context, reloaded.Context = nil, nil
	if diff := deep.Equal(reloaded, m); diff != nil {
		t.Error(diff)
	}
}

func TestGenerate_ConfiguredValues(t *testing.T) {
	g := newGenerator(t, map[string]string{"scores.tsv": "name\tscore\nann\t1.5\n"})

	m, err := g.Generate(croissant.GenerateConfig{
		InputPath:      "/data/scores.tsv",
		RecordSetName:  "records",
		Version:        "2.1.0",
		ConformsTo:     "http://mlcommons.org/croissant/1.1",
		EncodingFormat: "text/tab-separated-values",
		Delimiter:      '\t',
		Published:      time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "scores_dataset", m.Name)
	assert.Equal(t, "2.1.0", m.Version)
	assert.Equal(t, "http://mlcommons.org/croissant/1.1", m.ConformsTo)
	assert.Equal(t, "2023-12-24", m.DatePublished)
	assert.Equal(t, "text/tab-separated-values", m.Distributions[0].EncodingFormat)

	rs := m.RecordSets[0]
	assert.Equal(t, "records", rs.ID)
	require.Len(t, rs.Fields, 2)
	assert.Equal(t, "records/score", rs.Fields[1].ID)
	assert.Equal(t, "sc:Float", rs.Fields[1].DataType)
}

func TestGenerate_HeadersOnly(t *testing.T) {
	g := newGenerator(t, map[string]string{"empty.csv": "a,b\n"})

	m, err := g.Generate(croissant.GenerateConfig{InputPath: "/data/empty.csv"})
	require.NoError(t, err)

	for _, f := range m.RecordSets[0].Fields {
		assert.Equal(t, "sc:Text", f.DataType)
	}
}

func TestGenerate_ShortFirstRow(t *testing.T) {
	g := newGenerator(t, map[string]string{"short.csv": "a,b,c\n1\n"})

	m, err := g.Generate(croissant.GenerateConfig{InputPath: "/data/short.csv"})
	require.NoError(t, err)

	fields := m.RecordSets[0].Fields
	require.Len(t, fields, 3)
	assert.Equal(t, "sc:Integer", fields[0].DataType)
	assert.Equal(t, "sc:Text", fields[1].DataType)
	assert.Equal(t, "sc:Text", fields[2].DataType)
}

func TestGenerate_FirstRowOnly(t *testing.T) {
	g := newGenerator(t, map[string]string{"mixed.csv": "v\n1\nhello\n"})

	m, err := g.Generate(croissant.GenerateConfig{InputPath: "/data/mixed.csv"})
	require.NoError(t, err)
	assert.Equal(t, "sc:Integer", m.RecordSets[0].Fields[0].DataType)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		cfg     croissant.GenerateConfig
		wantErr error
	}{
		{
			name:    "missing input",
			cfg:     croissant.GenerateConfig{InputPath: "/data/missing.csv"},
			wantErr: croissant.ErrInputNotFound,
		},
		{
			name:    "input is directory",
			files:   map[string]string{"dir/x.csv": "a\n"},
			cfg:     croissant.GenerateConfig{InputPath: "/data/dir"},
			wantErr: croissant.ErrInputNotFound,
		},
		{
			name:    "duplicate headers",
			files:   map[string]string{"dup.csv": "id,ID\n1,2\n"},
			cfg:     croissant.GenerateConfig{InputPath: "/data/dup.csv"},
			wantErr: croissant.ErrInvalidCSV,
		},
		{
			name:    "empty header",
			files:   map[string]string{"blank.csv": "id,,age\n1,2,3\n"},
			cfg:     croissant.GenerateConfig{InputPath: "/data/blank.csv"},
			wantErr: croissant.ErrInvalidCSV,
		},
		{
			name:    "empty file",
			files:   map[string]string{"nothing.csv": ""},
			cfg:     croissant.GenerateConfig{InputPath: "/data/nothing.csv"},
			wantErr: croissant.ErrInvalidCSV,
		},
		{
			name:    "missing input path",
			cfg:     croissant.GenerateConfig{},
			wantErr: croissant.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGenerator(t, tt.files)
			m, err := g.Generate(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerate_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	g := newGenerator(t, map[string]string{"people.csv": peopleCSV})
	_, err := g.Generate(croissant.GenerateConfig{
		InputPath:  "/data/people.csv",
		OutputPath: filepath.Join(blocker, "out.json"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, croissant.ErrInvalidOutputPath)
}

func TestGenerate_KeepsInputNamedLikeOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.tmp")
	require.NoError(t, os.WriteFile(input, []byte(peopleCSV), 0644))
	output := filepath.Join(dir, "data.json")

	g := New(filesystem.NewOSFileSystem(), logging.NewNullLogger(), WithClock(fixedNow))
	_, err := g.Generate(croissant.GenerateConfig{InputPath: input, OutputPath: output})
	require.NoError(t, err)

	data, err := os.ReadFile(input)
	require.NoError(t, err, "input must survive the output path check")
	assert.Equal(t, peopleCSV, string(data))
	_, err = os.Stat(output)
	assert.NoError(t, err)
}

type fixedChecksum struct{ digest string }

func (f fixedChecksum) CalculateRaw([]byte) string { return f.digest }
func (f fixedChecksum) CalculateReader(io.Reader) (string, error) {
	return f.digest, nil
}

func TestGenerate_WithChecksum(t *testing.T) {
	digest := strings.Repeat("ab", 32)
	g := newGenerator(t, map[string]string{"people.csv": peopleCSV}, WithChecksum(fixedChecksum{digest: digest}))

	m, err := g.Generate(croissant.GenerateConfig{InputPath: "/data/people.csv"})
	require.NoError(t, err)
	assert.Equal(t, digest, m.Distributions[0].SHA256)
	assert.Equal(t, metadata.DatasetIdentifier(digest), m.Identifier)
}

func TestGenerate_ProgressStages(t *testing.T) {
	var stages []string
	g := newGenerator(t, map[string]string{"people.csv": peopleCSV},
		WithProgress(func(stage string) { stages = append(stages, stage) }))

	_, err := g.Generate(croissant.GenerateConfig{InputPath: "/data/people.csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hashing people.csv", "Reading columns of people.csv"}, stages)
}

func TestGenerate_WarnsOnOtherExtension(t *testing.T) {
	var buf strings.Builder
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("people.txt", peopleCSV)

	g := New(mfs, logging.NewConsoleLoggerTo(&buf, false), WithClock(fixedNow))
	_, err := g.Generate(croissant.GenerateConfig{InputPath: "/data/people.txt"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[WARN] people.txt does not have a .csv extension")
}
