package generator

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/croissant/pkg/croissant"
)

// InferDataType guesses the scalar type of a single cell. The first matching
// rule wins: integer, float, boolean (true/false in any case), date
// (YYYY-MM-DD), RFC 3339 timestamp (reported as a date), otherwise text.
func InferDataType(value string) string {
	v := strings.TrimSpace(value)

	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return croissant.DataTypeInteger
	}
	if isFloat(v) {
		return croissant.DataTypeFloat
	}
	if strings.EqualFold(v, "true") || strings.EqualFold(v, "false") {
		return croissant.DataTypeBoolean
	}
	if _, err := time.Parse(croissant.DatePublishedLayout, v); err == nil {
		return croissant.DataTypeDate
	}
	if _, err := time.Parse(time.RFC3339, v); err == nil {
		return croissant.DataTypeDate
	}
	return croissant.DataTypeText
}

func isFloat(v string) bool {
	// ParseFloat also takes hex mantissas and digit separators, which are not
	// decimal numbers in a CSV cell
	lower := strings.ToLower(strings.TrimLeft(v, "+-"))
	if strings.HasPrefix(lower, "0x") || strings.Contains(v, "_") {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
