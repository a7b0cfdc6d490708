// Package checksum provides content hashing for dataset files.
//
// Generated metadata records the SHA-256 digest of every distribution so that
// consumers can verify file integrity. The validator uses IsSHA256Hex to check
// the recorded digest format without recomputing it.
//
// # Example Usage
//
//	calculator := checksum.New()
//	digest, err := calculator.CalculateReader(file)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
