// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The metadata loader, the CSV generator and batch validation read files
// through FileSystemProvider so that they can be exercised against an
// in-memory tree in tests.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem (directory walks via godirwalk)
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
