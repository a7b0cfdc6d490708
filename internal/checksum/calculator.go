package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// HexLength is the length of a hex-encoded SHA-256 digest.
const HexLength = sha256.Size * 2

// Calculator is an interface for computing file checksums.
// This abstraction allows the generator to be tested with fixed digests.
type Calculator interface {
	// CalculateRaw computes a checksum of the given content.
	CalculateRaw(content []byte) string

	// CalculateReader computes a checksum of everything read from r.
	CalculateReader(r io.Reader) (string, error)
}

// SHA256 implements checksum calculation using SHA-256.
// Digests are lowercase hex strings of HexLength characters.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateReader streams r through SHA-256 so large files are never held in memory.
func (c SHA256) CalculateReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// IsSHA256Hex reports whether s looks like a hex-encoded SHA-256 digest:
// exactly HexLength characters, all hexadecimal. Both cases are accepted.
func IsSHA256Hex(s string) bool {
	if len(s) != HexLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
