// Package csvfile reads the parts of a CSV file that metadata generation
// needs: the header row and, when present, the first data row.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/croissant/pkg/croissant"
)

// Options configures the CSV dialect.
type Options struct {
	// Delimiter separates cells; zero means comma
	Delimiter rune
}

const bom = "\ufeff"

// ReadColumns returns the trimmed header cells and the trimmed cells of the
// first data row. firstRow is nil when the file has no data row; headers is
// nil when the input is empty. Rows may have any number of cells.
func ReadColumns(r io.Reader, opts Options) (headers []string, firstRow []string, err error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	record, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV headers: %v: %w", err, croissant.ErrInvalidCSV)
	}
	if len(record) > 0 {
		record[0] = strings.TrimPrefix(record[0], bom)
	}
	headers = trimAll(record)

	record, err = reader.Read()
	if errors.Is(err, io.EOF) {
		return headers, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read first CSV row: %v: %w", err, croissant.ErrInvalidCSV)
	}
	return headers, trimAll(record), nil
}

// CheckHeaders rejects a header row that is empty, has an empty cell or
// repeats a name. Names are compared case-insensitively.
func CheckHeaders(headers []string) error {
	if len(headers) == 0 {
		return fmt.Errorf("CSV file has no headers: %w", croissant.ErrInvalidCSV)
	}

	seen := make(map[string]bool, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			return fmt.Errorf("CSV file has empty header at column %d: %w", i+1, croissant.ErrInvalidCSV)
		}
		key := strings.ToLower(h)
		if seen[key] {
			return fmt.Errorf("CSV file has duplicate header: %s: %w", h, croissant.ErrInvalidCSV)
		}
		seen[key] = true
	}
	return nil
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
