// Package metadata holds the Croissant dataset metadata model and reads and
// writes it as JSON-LD.
//
// # Overview
//
// A Croissant document describes a dataset: its files (distributions), the
// record sets built from them and the fields of each record. The model keeps
// only the properties this tool generates and validates; the JSON-LD context
// is carried verbatim and never resolved.
//
//	{
//	  "@context": { ... },
//	  "@type": "sc:Dataset",
//	  "name": "people_dataset",
//	  "distribution": [
//	    {"@id": "people.csv", "@type": "cr:FileObject", "contentUrl": "people.csv", ...}
//	  ],
//	  "recordSet": [
//	    {"@id": "main", "@type": "cr:RecordSet", "field": [
//	      {"@id": "main/age", "@type": "cr:Field", "dataType": "sc:Integer",
//	       "source": {"extract": {"column": "age"}, "fileObject": {"@id": "people.csv"}}}
//	    ]}
//	  ]
//	}
//
// # Loading
//
// Parse, Decode and Load turn a document into a Metadata value. The loader
// only rejects documents that are not JSON or lack a structural node
// (distribution, recordSet, field, source and its extract and fileObject
// objects). Missing scalar properties load as empty strings so the validator
// can report them as issues. Loader failures are *DocumentError values
// wrapping croissant.ErrDocumentParse or croissant.ErrDocumentNotFound.
//
// # Package Structure
//
//   - types.go: document model and the default JSON-LD context
//   - properties.go: vocabulary IRIs of the model attributes
//   - loader.go: JSON decoding and structural checks
//   - writer.go: pretty-printed JSON output
//   - identity.go: deterministic dataset identifiers
package metadata
