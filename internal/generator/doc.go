// Package generator builds Croissant metadata for a CSV file.
//
// The generated document has one cr:FileObject distribution for the file,
// one record set, and one field per CSV column. Field data types are
// inferred from the first data row only; a column whose later rows disagree
// still gets the type of its first value.
package generator
