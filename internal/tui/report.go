package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vvka-141/croissant/internal/validation"
)

// ReportRenderer formats validation results for the terminal.
type ReportRenderer struct {
	color bool
}

// NewReportRenderer creates a renderer. Without color the report text is
// exactly validation.Issues.Report.
func NewReportRenderer(color bool) *ReportRenderer {
	return &ReportRenderer{color: color}
}

func (r *ReportRenderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Report renders the issue report, styling headers and contexts. The text is
// laid out from the issues themselves, so a context containing "] " is
// styled whole.
func (r *ReportRenderer) Report(issues *validation.Issues) string {
	if !r.color {
		return issues.Report()
	}

	var sb strings.Builder
	errs := issues.Errors()
	warnings := issues.Warnings()

	r.writeSection(&sb, ErrorHeaderStyle, "error", errs)
	if len(errs) > 0 && len(warnings) > 0 {
		sb.WriteString("\n")
	}
	r.writeSection(&sb, WarningHeaderStyle, "warning", warnings)

	return strings.TrimRight(sb.String(), " \t\r\n")
}

func (r *ReportRenderer) writeSection(sb *strings.Builder, header lipgloss.Style, kind string, issues []validation.Issue) {
	if len(issues) == 0 {
		return
	}
	sb.WriteString(r.style(header, fmt.Sprintf("Found the following %d %s(s) during the validation:", len(issues), kind)))
	sb.WriteString("\n")
	for _, issue := range issues {
		sb.WriteString("  -  ")
		if issue.Context != "" {
			sb.WriteString(r.style(ContextStyle, "["+issue.Context+"]"))
			sb.WriteString(" ")
		}
		sb.WriteString(issue.Message)
		sb.WriteString("\n")
	}
}

// Summary renders the one-line verdict for a document.
func (r *ReportRenderer) Summary(path string, issues *validation.Issues, strict bool) string {
	name := r.style(PathStyle, path)
	switch {
	case issues.HasErrors():
		return r.style(ErrorStyle, SymbolCross) + " " + name + ": " +
			fmt.Sprintf("%d error(s), %d warning(s)", issues.ErrorCount(), issues.WarningCount())
	case issues.HasWarnings():
		symbol := r.style(WarningStyle, SymbolWarning)
		if strict {
			symbol = r.style(ErrorStyle, SymbolCross)
		}
		return symbol + " " + name + ": " + fmt.Sprintf("%d warning(s)", issues.WarningCount())
	default:
		return r.style(SuccessStyle, SymbolCheck) + " " + name + ": valid"
	}
}

// LoadFailure renders a document that could not be loaded.
func (r *ReportRenderer) LoadFailure(path string, err error) string {
	return r.style(ErrorStyle, SymbolCross) + " " + r.style(PathStyle, path) + ": " + err.Error()
}
