package validation

import (
	"fmt"

	"github.com/vvka-141/croissant/internal/checksum"
	"github.com/vvka-141/croissant/internal/metadata"
	"github.com/vvka-141/croissant/pkg/croissant"
)

var props = metadata.Properties

func mandatory(p metadata.Property) string {
	return fmt.Sprintf("Property %q is mandatory, but does not exist.", p.IRI)
}

func recommended(p metadata.Property) string {
	return fmt.Sprintf("Property %q is recommended, but does not exist.", p.IRI)
}

func typeMismatch(name, got string, want ...metadata.Property) string {
	expected := ""
	for i, p := range want {
		if i > 0 {
			expected += " or "
		}
		expected += fmt.Sprintf("%q: %q", "@type", p.IRI)
	}
	return fmt.Sprintf("%q should have an attribute %s. Got %s instead.", name, expected, got)
}

func datasetContext(m *metadata.Metadata) string {
	return fmt.Sprintf("Dataset(%s)", m.Name)
}

func recordSetContext(m *metadata.Metadata, rs *metadata.RecordSet) string {
	return fmt.Sprintf("%s > RecordSet(%s)", datasetContext(m), rs.Name)
}

func fieldContext(m *metadata.Metadata, rs *metadata.RecordSet, f *metadata.Field) string {
	return fmt.Sprintf("%s > Field(%s)", recordSetContext(m, rs), f.Name)
}

// CheckDataset validates the document-level properties.
func CheckDataset(m *metadata.Metadata, issues *Issues) {
	ctx := datasetContext(m)

	if m.Name == "" {
		issues.AddError(mandatory(props.Name), ctx)
	}
	if m.Type != croissant.TypeDataset {
		issues.AddError(fmt.Sprintf("The current JSON-LD doesn't extend %s.", props.Dataset.IRI), ctx)
	}
	if m.ConformsTo == "" {
		issues.AddWarning(recommended(props.ConformsTo), ctx)
	}
	if m.Description == "" {
		issues.AddWarning(recommended(props.Description), ctx)
	}
}

// CheckDistributions validates every distribution in declaration order.
func CheckDistributions(m *metadata.Metadata, issues *Issues) {
	for i := range m.Distributions {
		d := &m.Distributions[i]
		ctx := fmt.Sprintf("%s > FileObject(%s)", datasetContext(m), d.Name)

		if d.Name == "" {
			issues.AddError(mandatory(props.Name), ctx)
		}
		if d.Type != croissant.TypeFileObject && d.Type != croissant.TypeFileSet {
			issues.AddError(typeMismatch(d.Name, d.Type, props.FileObject, props.FileSet), ctx)
		}
		if d.ContentURL == "" {
			issues.AddError(mandatory(props.ContentURL), ctx)
		}
		if d.EncodingFormat == "" {
			issues.AddError(mandatory(props.EncodingFormat), ctx)
		}

		switch {
		case d.SHA256 == "":
			issues.AddWarning(fmt.Sprintf("Property %q is recommended for file integrity verification.", props.SHA256.IRI), ctx)
		case !checksum.IsSHA256Hex(d.SHA256):
			issues.AddError(fmt.Sprintf("Invalid SHA256 hash format. Expected %d hexadecimal characters.", checksum.HexLength), ctx)
		}
	}
}

// CheckRecordSets validates every record set and each of its fields.
func CheckRecordSets(m *metadata.Metadata, issues *Issues) {
	for i := range m.RecordSets {
		rs := &m.RecordSets[i]
		ctx := recordSetContext(m, rs)

		if rs.Name == "" {
			issues.AddError(mandatory(props.Name), ctx)
		}
		if rs.Type != croissant.TypeRecordSet {
			issues.AddError(typeMismatch(rs.Name, rs.Type, props.RecordSet), ctx)
		}

		for j := range rs.Fields {
			checkField(m, rs, &rs.Fields[j], issues)
		}
	}
}

func checkField(m *metadata.Metadata, rs *metadata.RecordSet, f *metadata.Field, issues *Issues) {
	ctx := fieldContext(m, rs, f)

	if f.Name == "" {
		issues.AddError(mandatory(props.Name), ctx)
	}
	if f.Type != croissant.TypeField {
		issues.AddError(typeMismatch(f.Name, f.Type, props.Field), ctx)
	}

	switch {
	case f.DataType == "":
		issues.AddError(fmt.Sprintf(
			"The field does not specify a valid %s, neither does any of its predecessor. Got: %s",
			props.DataType.IRI, f.DataType), ctx)
	case !croissant.IsStandardDataType(f.DataType):
		issues.AddWarning(fmt.Sprintf(
			"Unknown data type: %s. Consider using a standard schema.org type.", f.DataType), ctx)
	}

	if f.ExtractColumn() == "" || f.FileObjectID() == "" {
		issues.AddError(fmt.Sprintf(
			"Node %q is a field and has no source. Please, use %s to specify the source.",
			f.ID, props.Source.IRI), ctx)
	}
}

// CheckReferences reports fields whose file object does not name a
// distribution of the document. Fields without a file object are left to
// CheckRecordSets.
func CheckReferences(m *metadata.Metadata, issues *Issues) {
	known := make(map[string]struct{}, len(m.Distributions))
	for _, d := range m.Distributions {
		known[d.ID] = struct{}{}
	}

	for i := range m.RecordSets {
		rs := &m.RecordSets[i]
		for j := range rs.Fields {
			f := &rs.Fields[j]
			id := f.FileObjectID()
			if id == "" {
				continue
			}
			if _, ok := known[id]; !ok {
				issues.AddError(fmt.Sprintf("Field references non-existent file object: %s", id), fieldContext(m, rs, f))
			}
		}
	}
}

// Validate runs every rule group against m and returns the findings.
func Validate(m *metadata.Metadata) *Issues {
	issues := NewIssues()
	CheckDataset(m, issues)
	CheckDistributions(m, issues)
	CheckRecordSets(m, issues)
	CheckReferences(m, issues)
	return issues
}
