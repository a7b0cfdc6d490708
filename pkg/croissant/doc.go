// Package croissant holds the public surface shared by the croissant tool:
// JSON-LD type tags, exit codes, sentinel errors, run configuration and the
// Logger interface.
//
// Generation and validation live under internal/; this package has no
// dependencies beyond the standard library so that every internal package can
// import it.
package croissant
