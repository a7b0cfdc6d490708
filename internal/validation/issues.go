package validation

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Severity classifies an issue.
type Severity int

const (
	SeverityError   Severity = iota // The document does not conform
	SeverityWarning                 // A recommendation is not followed
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// MarshalJSON encodes the severity as its name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Issue is a single validation finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Context is the structural path of the finding; empty means none
	Context string `json:"context,omitempty"`
}

// String formats the issue as a report bullet without the indentation.
func (i Issue) String() string {
	if i.Context == "" {
		return i.Message
	}
	return fmt.Sprintf("[%s] %s", i.Context, i.Message)
}

// Issues collects validation findings in insertion order.
// The zero value is ready to use. Issues is not safe for concurrent mutation;
// use one collector per validation pass.
type Issues struct {
	items []Issue
}

// NewIssues returns an empty collector.
func NewIssues() *Issues {
	return &Issues{}
}

// AddError records an error. Context segments, if any, are joined with " > ".
func (c *Issues) AddError(message string, context ...string) {
	c.add(SeverityError, message, context)
}

// AddWarning records a warning. Context segments, if any, are joined with " > ".
func (c *Issues) AddWarning(message string, context ...string) {
	c.add(SeverityWarning, message, context)
}

func (c *Issues) add(severity Severity, message string, context []string) {
	c.items = append(c.items, Issue{
		Severity: severity,
		Message:  message,
		Context:  strings.Join(context, " > "),
	})
}

// HasErrors reports whether any error was recorded.
func (c *Issues) HasErrors() bool { return c.ErrorCount() > 0 }

// HasWarnings reports whether any warning was recorded.
func (c *Issues) HasWarnings() bool { return c.WarningCount() > 0 }

// ErrorCount returns the number of errors.
func (c *Issues) ErrorCount() int { return c.count(SeverityError) }

// WarningCount returns the number of warnings.
func (c *Issues) WarningCount() int { return c.count(SeverityWarning) }

// IsEmpty reports whether nothing was recorded.
func (c *Issues) IsEmpty() bool { return len(c.items) == 0 }

// Len returns the total number of findings.
func (c *Issues) Len() int { return len(c.items) }

func (c *Issues) count(severity Severity) int {
	n := 0
	for _, issue := range c.items {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// All returns a copy of every finding in insertion order.
func (c *Issues) All() []Issue {
	out := make([]Issue, len(c.items))
	copy(out, c.items)
	return out
}

// Errors returns the errors in insertion order.
func (c *Issues) Errors() []Issue { return c.filter(SeverityError) }

// Warnings returns the warnings in insertion order.
func (c *Issues) Warnings() []Issue { return c.filter(SeverityWarning) }

func (c *Issues) filter(severity Severity) []Issue {
	var out []Issue
	for _, issue := range c.items {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// Report renders the findings as text; other tooling parses this format,
// so the wording and layout are fixed. It returns "" when there are no
// findings.
//
//	Found the following 1 error(s) during the validation:
//	  -  [Dataset(x)] Property "https://schema.org/name" is mandatory, but does not exist.
//
//	Found the following 1 warning(s) during the validation:
//	  -  [Dataset(x)] Property "https://schema.org/description" is recommended, but does not exist.
func (c *Issues) Report() string {
	var sb strings.Builder

	errs := c.Errors()
	warnings := c.Warnings()

	writeSection(&sb, "error", errs)
	if len(errs) > 0 && len(warnings) > 0 {
		sb.WriteString("\n")
	}
	writeSection(&sb, "warning", warnings)

	return strings.TrimRight(sb.String(), " \t\r\n")
}

func writeSection(sb *strings.Builder, kind string, issues []Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(sb, "Found the following %d %s(s) during the validation:\n", len(issues), kind)
	for _, issue := range issues {
		fmt.Fprintf(sb, "  -  %s\n", issue)
	}
}

// MarshalJSON encodes the collector as counts plus the findings in order.
func (c *Issues) MarshalJSON() ([]byte, error) {
	issues := c.items
	if issues == nil {
		issues = []Issue{}
	}
	return json.Marshal(struct {
		Errors   int     `json:"errors"`
		Warnings int     `json:"warnings"`
		Issues   []Issue `json:"issues"`
	}{
		Errors:   c.ErrorCount(),
		Warnings: c.WarningCount(),
		Issues:   issues,
	})
}
