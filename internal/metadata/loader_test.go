package metadata

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/croissant/internal/files/filesystem"
	"github.com/vvka-141/croissant/pkg/croissant"
)

const validDocument = `{
  "@context": {"@vocab": "https://schema.org/", "cr": "http://mlcommons.org/croissant/"},
  "@type": "sc:Dataset",
  "name": "people_dataset",
  "description": "Dataset created from people.csv",
  "conformsTo": "http://mlcommons.org/croissant/1.0",
  "datePublished": "2024-05-01",
  "version": "1.0.0",
  "distribution": [
    {
      "@id": "people.csv",
      "@type": "cr:FileObject",
      "name": "people.csv",
      "contentSize": "24 B",
      "contentUrl": "people.csv",
      "encodingFormat": "text/csv",
      "sha256": "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
    }
  ],
  "recordSet": [
    {
      "@id": "main",
      "@type": "cr:RecordSet",
      "name": "main",
      "description": "Records from people.csv",
      "field": [
        {
          "@id": "main/age",
          "@type": "cr:Field",
          "name": "age",
          "description": "Field for age",
          "dataType": "sc:Integer",
          "source": {"extract": {"column": "age"}, "fileObject": {"@id": "people.csv"}}
        }
      ]
    }
  ]
}`

func TestParse_ValidDocument(t *testing.T) {
	m, err := Parse([]byte(validDocument))
	require.NoError(t, err)

	expected := &Metadata{
		Type:          "sc:Dataset",
		Name:          "people_dataset",
		Description:   "Dataset created from people.csv",
		ConformsTo:    "http://mlcommons.org/croissant/1.0",
		DatePublished: "2024-05-01",
		Version:       "1.0.0",
		Distributions: []Distribution{{
			ID:             "people.csv",
			Type:           "cr:FileObject",
			Name:           "people.csv",
			ContentSize:    "24 B",
			ContentURL:     "people.csv",
			EncodingFormat: "text/csv",
			SHA256:         "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		}},
		RecordSets: []RecordSet{{
			ID:          "main",
			Type:        "cr:RecordSet",
			Name:        "main",
			Description: "Records from people.csv",
			Fields: []Field{{
				ID:          "main/age",
				Type:        "cr:Field",
				Name:        "age",
				Description: "Field for age",
				DataType:    "sc:Integer",
				Source: FieldSource{
					Extract:    Extract{Column: "age"},
					FileObject: FileObject{ID: "people.csv"},
				},
			}},
		}},
	}

	require.NotEmpty(t, m.Context)
	m.Context = nil
	if diff := deep.Equal(m, expected); diff != nil {
		t.Error(diff)
	}

	field := m.RecordSets[0].Fields[0]
	assert.Equal(t, "age", field.ExtractColumn())
	assert.Equal(t, "people.csv", field.FileObjectID())
}

func TestParse_MissingScalarsLoadEmpty(t *testing.T) {
	m, err := Parse([]byte(`{"distribution": [{}], "recordSet": []}`))
	require.NoError(t, err)

	assert.Empty(t, m.Name)
	assert.Empty(t, m.Type)
	require.Len(t, m.Distributions, 1)
	assert.Empty(t, m.Distributions[0].SHA256)
	assert.Empty(t, m.RecordSets)
}

func TestParse_StructuralFailures(t *testing.T) {
	tests := []struct {
		name     string
		document string
		node     string
	}{
		{
			name:     "missing distribution",
			document: `{"recordSet": []}`,
			node:     "distribution",
		},
		{
			name:     "missing recordSet",
			document: `{"distribution": []}`,
			node:     "recordSet",
		},
		{
			name:     "null recordSet",
			document: `{"distribution": [], "recordSet": null}`,
			node:     "recordSet",
		},
		{
			name:     "record set without fields",
			document: `{"distribution": [], "recordSet": [{"name": "main"}]}`,
			node:     "recordSet[0].field",
		},
		{
			name:     "field without source",
			document: `{"distribution": [], "recordSet": [{"field": [{"name": "a"}, {"name": "b"}]}]}`,
			node:     "recordSet[0].field[0].source",
		},
		{
			name:     "source without extract",
			document: `{"distribution": [], "recordSet": [{"field": [{"source": {"fileObject": {"@id": "x"}}}]}]}`,
			node:     "recordSet[0].field[0].source.extract",
		},
		{
			name:     "source without fileObject",
			document: `{"distribution": [], "recordSet": [{"field": [{"source": {"extract": {"column": "x"}}}]}]}`,
			node:     "recordSet[0].field[0].source.fileObject",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.document))
			require.Error(t, err)
			assert.True(t, errors.Is(err, croissant.ErrDocumentParse))

			var docErr *DocumentError
			require.ErrorAs(t, err, &docErr)
			assert.Equal(t, tt.node, docErr.Node)
		})
	}
}

func TestParse_WrongShape(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"empty input", "   \n"},
		{"array root", `[{"name": "x"}]`},
		{"null root", `null`},
		{"string root", `"dataset"`},
		{"distribution is object", `{"distribution": {}, "recordSet": []}`},
		{"name is number", `{"name": 5, "distribution": [], "recordSet": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.document))
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, croissant.ErrDocumentParse)
		})
	}
}

func TestParse_SyntaxErrorHasPosition(t *testing.T) {
	document := "{\n  \"name\": \"x\",\n  \"distribution\": [,]\n}"

	_, err := Parse([]byte(document))
	require.Error(t, err)

	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.ErrorIs(t, err, croissant.ErrDocumentParse)
	assert.NotEmpty(t, docErr.Message)
	assert.Contains(t, docErr.Error(), "Hint:")
}

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(validDocument))
	require.NoError(t, err)
	assert.Equal(t, "people_dataset", m.Name)
}

func TestLoad(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("people.json", validDocument)

	m, err := Load(mfs, "/data/people.json")
	require.NoError(t, err)
	assert.Equal(t, "people_dataset", m.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")

	_, err := Load(mfs, "/data/missing.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, croissant.ErrDocumentNotFound)
	assert.NotErrorIs(t, err, croissant.ErrDocumentParse)

	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "/data/missing.json", docErr.Path)
}

func TestLoad_ParseErrorCarriesPath(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("broken.json", `{"distribution": []}`)

	_, err := Load(mfs, "/data/broken.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/data/broken.json")
	assert.Contains(t, err.Error(), "recordSet")
}

func TestPosition(t *testing.T) {
	data := []byte("ab\ncd\nef")

	tests := []struct {
		offset    int64
		line, col int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 1, 2},
		{4, 2, 1},
		{8, 3, 2},
		{100, 3, 2},
	}

	for _, tt := range tests {
		line, col := position(data, tt.offset)
		assert.Equal(t, tt.line, line, "offset %d", tt.offset)
		assert.Equal(t, tt.col, col, "offset %d", tt.offset)
	}
}
