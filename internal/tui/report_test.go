package tui

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vvka-141/croissant/internal/validation"
)

func sampleIssues() *validation.Issues {
	issues := validation.NewIssues()
	issues.AddError("broken", "Dataset(x)")
	issues.AddWarning("hint")
	return issues
}

func TestReportRenderer_PlainMatchesReport(t *testing.T) {
	issues := sampleIssues()
	assert.Equal(t, issues.Report(), NewReportRenderer(false).Report(issues))
}

func TestReportRenderer_ColorKeepsText(t *testing.T) {
	issues := sampleIssues()
	out := NewReportRenderer(true).Report(issues)

	assert.Contains(t, out, "error(s) during the validation:")
	assert.Contains(t, out, "Dataset(x)")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "hint")
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestReportRenderer_ColorMatchesPlainText(t *testing.T) {
	issues := validation.NewIssues()
	issues.AddError("Property \"https://schema.org/name\" is mandatory, but does not exist.", "Dataset(a] b)")
	issues.AddError("no context")
	issues.AddWarning("hint", "Dataset(a] b)", "RecordSet(main)")

	r := NewReportRenderer(true)
	out := r.Report(issues)

	assert.Equal(t, issues.Report(), ansiEscape.ReplaceAllString(out, ""))
	assert.Contains(t, out, r.style(ContextStyle, "[Dataset(a] b)]"))
	assert.Contains(t, out, r.style(ContextStyle, "[Dataset(a] b) > RecordSet(main)]"))
}

func TestReportRenderer_ColorEmptyReport(t *testing.T) {
	assert.Equal(t, "", NewReportRenderer(true).Report(validation.NewIssues()))
}

func TestReportRenderer_Summary(t *testing.T) {
	r := NewReportRenderer(false)

	assert.Equal(t, "✗ a.json: 1 error(s), 1 warning(s)", r.Summary("a.json", sampleIssues(), false))

	warned := validation.NewIssues()
	warned.AddWarning("w")
	assert.Equal(t, "! b.json: 1 warning(s)", r.Summary("b.json", warned, false))
	assert.Equal(t, "✗ b.json: 1 warning(s)", r.Summary("b.json", warned, true))

	assert.Equal(t, "✓ c.json: valid", r.Summary("c.json", validation.NewIssues(), false))
}

func TestReportRenderer_LoadFailure(t *testing.T) {
	r := NewReportRenderer(false)
	assert.Equal(t, "✗ d.json: nope", r.LoadFailure("d.json", errors.New("nope")))
}
