package metadata

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/vvka-141/croissant/internal/files/filesystem"
	"github.com/vvka-141/croissant/pkg/croissant"
)

// documentShape mirrors the structural nodes of a document. Pointers tell an
// absent or null node apart from an empty one.
type documentShape struct {
	Distribution *[]struct{}      `json:"distribution"`
	RecordSet    *[]recordSetShape `json:"recordSet"`
}

type recordSetShape struct {
	Field *[]fieldShape `json:"field"`
}

type fieldShape struct {
	Source *sourceShape `json:"source"`
}

type sourceShape struct {
	Extract    *struct{} `json:"extract"`
	FileObject *struct{} `json:"fileObject"`
}

// Load reads and parses the document at path.
func Load(fsys filesystem.FileSystemProvider, path string) (*Metadata, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, &DocumentError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Check that the file exists and is readable.",
			Err:     croissant.ErrDocumentNotFound,
		}
	}
	return parse(data, path)
}

// Decode reads a whole document from r and parses it.
func Decode(r io.Reader) (*Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DocumentError{
			Message: fmt.Sprintf("failed to read document: %v", err),
			Err:     croissant.ErrDocumentNotFound,
		}
	}
	return parse(data, "")
}

// Parse parses a document held in memory.
func Parse(data []byte) (*Metadata, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (*Metadata, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, &DocumentError{
			Path:    path,
			Message: "document is empty",
			Hint:    shapeHint,
			Err:     croissant.ErrDocumentParse,
		}
	}
	if trimmed[0] != '{' {
		offset := int64(len(data) - len(trimmed))
		line, col := position(data, offset+1)
		return nil, &DocumentError{
			Path:    path,
			Line:    line,
			Column:  col,
			Offset:  offset,
			Message: "document root must be a JSON object",
			Hint:    shapeHint,
			Err:     croissant.ErrDocumentParse,
		}
	}

	var shape documentShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, wrapJSONError(err, data, path, croissant.ErrDocumentParse)
	}
	if node := shape.missingNode(); node != "" {
		return nil, &DocumentError{
			Path:    path,
			Node:    node,
			Message: fmt.Sprintf("required node %q is missing", node),
			Hint:    shapeHint,
			Err:     croissant.ErrDocumentParse,
		}
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, wrapJSONError(err, data, path, croissant.ErrDocumentParse)
	}
	return &m, nil
}

// missingNode returns the first absent structural node in document order,
// or "" when the document has every one of them.
func (s *documentShape) missingNode() string {
	if s.Distribution == nil {
		return "distribution"
	}
	if s.RecordSet == nil {
		return "recordSet"
	}
	for i, rs := range *s.RecordSet {
		if rs.Field == nil {
			return fmt.Sprintf("recordSet[%d].field", i)
		}
		for j, f := range *rs.Field {
			prefix := fmt.Sprintf("recordSet[%d].field[%d].source", i, j)
			switch {
			case f.Source == nil:
				return prefix
			case f.Source.Extract == nil:
				return prefix + ".extract"
			case f.Source.FileObject == nil:
				return prefix + ".fileObject"
			}
		}
	}
	return ""
}
