package hashing

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"iter"
	"strings"
)

// DriverName identifies a digest driver.
// Using a named string type prevents accidental confusion with plain strings.
type DriverName string

const (
	// DriverBlake2b256 selects 256-bit BLAKE2b (the default).
	DriverBlake2b256 DriverName = "blake2b-256"
	// DriverBlake2b512 selects 512-bit BLAKE2b.
	DriverBlake2b512 DriverName = "blake2b-512"
	// DriverBlake2s256 selects 256-bit BLAKE2s.
	DriverBlake2s256 DriverName = "blake2s-256"
	// DriverSHA256 selects SHA-256.
	DriverSHA256 DriverName = "sha256"
)

// Hasher is the interface satisfied by all digest drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines;
// the [hash.Hash] values they return are not.
type Hasher interface {
	// New returns a fresh, empty hash.
	New() hash.Hash

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// DefaultHasher returns a 256-bit, unkeyed [Blake2bHasher].
func DefaultHasher() Hasher {
	h, _ := NewBlake2bHasher(DefaultBlake2bOptions())
	return h
}

// Fingerprint digests parts in order with h and returns the raw sum.
//
// Every part is preceded by its length as a uvarint.
func Fingerprint(h Hasher, parts iter.Seq[string]) []byte {
	d := h.New()
	var lenBuf [binary.MaxVarintLen64]byte
	for part := range parts {
		n := binary.PutUvarint(lenBuf[:], uint64(len(part)))
		d.Write(lenBuf[:n])
		d.Write([]byte(part))
	}
	return d.Sum(nil)
}

// FormatFingerprint renders sum as "<driver>:<hex>".
func FormatFingerprint(driver DriverName, sum []byte) string {
	return string(driver) + ":" + hex.EncodeToString(sum)
}

// ParseFingerprint splits a string produced by [FormatFingerprint] into its
// driver name and raw sum.
func ParseFingerprint(s string) (DriverName, []byte, error) {
	driver, digest, ok := strings.Cut(s, ":")
	if !ok || driver == "" || digest == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidFingerprint, s)
	}
	sum, err := hex.DecodeString(digest)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidFingerprint, err)
	}
	return DriverName(driver), sum, nil
}
