package hashing

import (
	"crypto/sha256"
	"hash"
)

// SHA256Hasher produces SHA-256 digests.
//
// It exists for interoperability with tools that only speak SHA-256; prefer
// [Blake2bHasher] otherwise.
type SHA256Hasher struct{}

// Driver returns [DriverSHA256].
func (SHA256Hasher) Driver() DriverName { return DriverSHA256 }

// New returns a fresh SHA-256 hash.
func (SHA256Hasher) New() hash.Hash { return sha256.New() }
