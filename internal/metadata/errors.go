package metadata

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// DocumentError describes why a metadata document could not be loaded.
// It includes the document path, the position of the problem when known and
// an actionable suggestion.
type DocumentError struct {
	Path    string // Document path (empty for in-memory input)
	Line    int    // Line number (0 if unknown)
	Column  int    // Column number (0 if unknown)
	Offset  int64  // Byte offset (0 if unknown)
	Node    string // Structural node, e.g. "recordSet[0].field"; empty if not applicable
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
	Err     error  // croissant.ErrDocumentParse or croissant.ErrDocumentNotFound
}

// Error implements the error interface with rich formatting.
func (e *DocumentError) Error() string {
	location := e.Path
	if location == "" {
		location = "<input>"
	}
	if e.Line > 0 {
		if e.Column > 0 {
			location = fmt.Sprintf("%s (line %d, col %d)", location, e.Line, e.Column)
		} else {
			location = fmt.Sprintf("%s (line %d)", location, e.Line)
		}
	}

	msg := fmt.Sprintf("metadata document error in %s: %s", location, e.Message)
	if e.Node != "" {
		msg = fmt.Sprintf("metadata document error in %s [node: %s]: %s", location, e.Node, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// Unwrap exposes the sentinel error for errors.Is.
func (e *DocumentError) Unwrap() error { return e.Err }

const shapeHint = "A Croissant document is a JSON object with \"distribution\" and \"recordSet\" arrays.\n" +
	"Every record set needs a \"field\" array and every field a\n" +
	"  \"source\": {\"extract\": {\"column\": \"...\"}, \"fileObject\": {\"@id\": \"...\"}}"

// wrapJSONError converts go-json errors to DocumentError with line numbers.
func wrapJSONError(err error, data []byte, path string, sentinel error) error {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
		line, col := position(data, offset)
		return &DocumentError{
			Path:    path,
			Line:    line,
			Column:  col,
			Offset:  offset,
			Message: syntaxErr.Error(),
			Hint:    "Check for missing commas, unbalanced braces and unquoted keys.",
			Err:     sentinel,
		}
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
		line, col := position(data, offset)
		return &DocumentError{
			Path:    path,
			Line:    line,
			Column:  col,
			Offset:  offset,
			Node:    typeErr.Field,
			Message: typeErr.Error(),
			Hint:    shapeHint,
			Err:     sentinel,
		}
	}

	return &DocumentError{
		Path:    path,
		Message: err.Error(),
		Hint:    shapeHint,
		Err:     sentinel,
	}
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset <= 0 {
		return 0, 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	col = int(offset) - (bytes.LastIndexByte(prefix, '\n') + 1)
	if col == 0 {
		col = 1
	}
	return line, col
}
