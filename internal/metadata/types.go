package metadata

import (
	"github.com/goccy/go-json"
)

// Metadata is a Croissant dataset document.
type Metadata struct {
	// Context is the JSON-LD @context, kept as raw JSON
	Context json.RawMessage `json:"@context,omitempty"`

	Type          string         `json:"@type"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	ConformsTo    string         `json:"conformsTo"`
	DatePublished string         `json:"datePublished"`
	Version       string         `json:"version"`
	Identifier    string         `json:"identifier,omitempty"`
	Distributions []Distribution `json:"distribution"`
	RecordSets    []RecordSet    `json:"recordSet"`
}

// Distribution describes one file of the dataset.
type Distribution struct {
	ID             string `json:"@id"`
	Type           string `json:"@type"`
	Name           string `json:"name"`
	ContentSize    string `json:"contentSize"`
	ContentURL     string `json:"contentUrl"`
	EncodingFormat string `json:"encodingFormat"`
	SHA256         string `json:"sha256"`
}

// RecordSet groups the fields extracted from a distribution.
type RecordSet struct {
	ID          string  `json:"@id"`
	Type        string  `json:"@type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fields      []Field `json:"field"`
}

// Field is one column of a record set.
type Field struct {
	ID          string      `json:"@id"`
	Type        string      `json:"@type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	DataType    string      `json:"dataType"`
	Source      FieldSource `json:"source"`
}

// ExtractColumn returns the source column name.
func (f *Field) ExtractColumn() string { return f.Source.Extract.Column }

// FileObjectID returns the @id of the distribution the field reads from.
func (f *Field) FileObjectID() string { return f.Source.FileObject.ID }

// FieldSource locates the data of a field.
type FieldSource struct {
	Extract    Extract    `json:"extract"`
	FileObject FileObject `json:"fileObject"`
}

// Extract names the column a field is read from.
type Extract struct {
	Column string `json:"column"`
}

// FileObject references a distribution by @id.
type FileObject struct {
	ID string `json:"@id"`
}

// TypedTerm is a context term with an explicit JSON-LD @type coercion.
type TypedTerm struct {
	ID   string `json:"@id"`
	Type string `json:"@type"`
}

// ContextDefinition is the JSON-LD context written into generated documents.
type ContextDefinition struct {
	Language     string    `json:"@language"`
	Vocab        string    `json:"@vocab"`
	CiteAs       string    `json:"citeAs"`
	Column       string    `json:"column"`
	ConformsTo   string    `json:"conformsTo"`
	CR           string    `json:"cr"`
	DCT          string    `json:"dct"`
	Data         TypedTerm `json:"data"`
	DataType     TypedTerm `json:"dataType"`
	Extract      string    `json:"extract"`
	Field        string    `json:"field"`
	FileObject   string    `json:"fileObject"`
	FileProperty string    `json:"fileProperty"`
	SC           string    `json:"sc"`
	Source       string    `json:"source"`
}

// StandardContext returns the Croissant 1.0 context definition.
func StandardContext() ContextDefinition {
	return ContextDefinition{
		Language:     "en",
		Vocab:        "https://schema.org/",
		CiteAs:       "cr:citeAs",
		Column:       "cr:column",
		ConformsTo:   "dct:conformsTo",
		CR:           "http://mlcommons.org/croissant/",
		DCT:          "http://purl.org/dc/terms/",
		Data:         TypedTerm{ID: "cr:data", Type: "@json"},
		DataType:     TypedTerm{ID: "cr:dataType", Type: "@vocab"},
		Extract:      "cr:extract",
		Field:        "cr:field",
		FileObject:   "cr:fileObject",
		FileProperty: "cr:fileProperty",
		SC:           "https://schema.org/",
		Source:       "cr:source",
	}
}

// DefaultContext returns the standard context encoded for Metadata.Context.
func DefaultContext() json.RawMessage {
	data, err := json.Marshal(StandardContext())
	if err != nil {
		// The context is a fixed struct of strings
		panic(err)
	}
	return data
}
