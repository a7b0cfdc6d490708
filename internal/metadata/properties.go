package metadata

// Property pairs a document attribute with its vocabulary IRI.
type Property struct {
	Name string // key in the JSON-LD document
	IRI  string // expanded vocabulary IRI
}

// Properties maps model attributes to the vocabulary IRIs used when reporting
// about them.
var Properties = struct {
	Name           Property
	Description    Property
	ConformsTo     Property
	ContentURL     Property
	EncodingFormat Property
	SHA256         Property
	DataType       Property
	Source         Property
	Dataset        Property
	FileObject     Property
	FileSet        Property
	RecordSet      Property
	Field          Property
}{
	Name:           Property{Name: "name", IRI: "https://schema.org/name"},
	Description:    Property{Name: "description", IRI: "https://schema.org/description"},
	ConformsTo:     Property{Name: "conformsTo", IRI: "http://purl.org/dc/terms/conformsTo"},
	ContentURL:     Property{Name: "contentUrl", IRI: "https://schema.org/contentUrl"},
	EncodingFormat: Property{Name: "encodingFormat", IRI: "https://schema.org/encodingFormat"},
	SHA256:         Property{Name: "sha256", IRI: "https://schema.org/sha256"},
	DataType:       Property{Name: "dataType", IRI: "http://mlcommons.org/croissant/dataType"},
	Source:         Property{Name: "source", IRI: "http://mlcommons.org/croissant/source"},
	Dataset:        Property{Name: "sc:Dataset", IRI: "https://schema.org/Dataset"},
	FileObject:     Property{Name: "cr:FileObject", IRI: "http://mlcommons.org/croissant/FileObject"},
	FileSet:        Property{Name: "cr:FileSet", IRI: "http://mlcommons.org/croissant/FileSet"},
	RecordSet:      Property{Name: "cr:RecordSet", IRI: "http://mlcommons.org/croissant/RecordSet"},
	Field:          Property{Name: "cr:Field", IRI: "http://mlcommons.org/croissant/Field"},
}
