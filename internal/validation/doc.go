// Package validation checks Croissant metadata documents and collects what
// is wrong with them.
//
// Validation never fails on a document that loaded: every finding becomes an
// Issue in an Issues collector, either an error (the document does not
// conform) or a warning (a recommended property is missing). The four rule
// groups run in a fixed order and all of them always run:
//
//  1. CheckDataset: document-level properties
//  2. CheckDistributions: every distribution
//  3. CheckRecordSets: every record set and each of its fields
//  4. CheckReferences: fields pointing at distributions that do not exist
//
// Findings carry a context path naming where they originated:
//
//	Dataset(people) > RecordSet(main) > Field(age)
//
// Documents that cannot be loaded at all are reported by ValidateFile and
// ValidateAll as errors, never as issues.
package validation
