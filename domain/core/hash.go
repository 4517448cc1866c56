package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Fingerprint identifies a validation report's exact content. Two reports
// built from identical inputs must carry equal fingerprints.
type Fingerprint Hash

// String returns the string representation
func (f Fingerprint) String() string { return Hash(f).String() }

// ComputeFingerprint hashes an ordered sequence of report parts
func ComputeFingerprint(parts ...string) Fingerprint {
	var data strings.Builder
	for i, part := range parts {
		data.WriteString(fmt.Sprintf("%d:%s;", i, part))
	}
	return Fingerprint(NewHash([]byte(data.String())))
}
