package hashing

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

// Blake2bOptions configures a [Blake2bHasher].
type Blake2bOptions struct {
	// Size is the digest length in bytes.
	// Valid range: [1, blake2b.Size (64)].
	// Default: blake2b.Size256 (32).
	Size int

	// Key turns the digest into a MAC. Leave nil for a plain hash.
	// At most blake2b.Size (64) bytes.
	Key []byte
}

// DefaultBlake2bOptions returns Blake2bOptions for an unkeyed 256-bit digest.
func DefaultBlake2bOptions() Blake2bOptions {
	return Blake2bOptions{Size: blake2b.Size256}
}

// Blake2bHasher produces BLAKE2b digests.
//
// Blake2bHasher is immutable after construction and safe for concurrent use.
type Blake2bHasher struct {
	size int
	key  []byte
}

// NewBlake2bHasher constructs a Blake2bHasher with the provided options.
// Returns [ErrInvalidOption] if Size or Key are out of range.
func NewBlake2bHasher(opts Blake2bOptions) (*Blake2bHasher, error) {
	if opts.Size < 1 || opts.Size > blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b size %d must be in [1, %d]",
			ErrInvalidOption, opts.Size, blake2b.Size)
	}
	if len(opts.Key) > blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b key length %d exceeds %d",
			ErrInvalidOption, len(opts.Key), blake2b.Size)
	}
	key := append([]byte(nil), opts.Key...)
	return &Blake2bHasher{size: opts.Size, key: key}, nil
}

// Driver returns [DriverBlake2b256], [DriverBlake2b512], or
// "blake2b-<bits>" for other sizes.
func (h *Blake2bHasher) Driver() DriverName {
	switch h.size {
	case blake2b.Size256:
		return DriverBlake2b256
	case blake2b.Size:
		return DriverBlake2b512
	default:
		return DriverName(fmt.Sprintf("blake2b-%d", h.size*8))
	}
}

// Size returns the configured digest length in bytes.
func (h *Blake2bHasher) Size() int { return h.size }

// New returns a fresh BLAKE2b hash.
func (h *Blake2bHasher) New() hash.Hash {
	// Parameters were validated by NewBlake2bHasher.
	d, _ := blake2b.New(h.size, h.key)
	return d
}

// Blake2sHasher produces 256-bit BLAKE2s digests.
//
// Blake2sHasher is immutable after construction and safe for concurrent use.
type Blake2sHasher struct {
	key []byte
}

// NewBlake2sHasher constructs a Blake2sHasher, optionally keyed.
// Returns [ErrInvalidOption] if key is longer than blake2s.Size (32) bytes.
func NewBlake2sHasher(key []byte) (*Blake2sHasher, error) {
	if len(key) > blake2s.Size {
		return nil, fmt.Errorf("%w: blake2s key length %d exceeds %d",
			ErrInvalidOption, len(key), blake2s.Size)
	}
	return &Blake2sHasher{key: append([]byte(nil), key...)}, nil
}

// Driver returns [DriverBlake2s256].
func (h *Blake2sHasher) Driver() DriverName { return DriverBlake2s256 }

// New returns a fresh BLAKE2s-256 hash.
func (h *Blake2sHasher) New() hash.Hash {
	d, _ := blake2s.New256(h.key)
	return d
}
