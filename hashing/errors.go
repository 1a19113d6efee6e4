package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := m.Matches(stored, names)
//	if errors.Is(err, hashing.ErrInvalidFingerprint) {
//	    // stored value is malformed
//	}
var (
	// ErrInvalidFingerprint is returned when a fingerprint string cannot be
	// parsed because it has no driver prefix or its digest is not valid hex.
	ErrInvalidFingerprint = errors.New("hashing: invalid or unrecognised fingerprint")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., a BLAKE2b
	// digest size above 64 bytes).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Fingerprint] / [Manager.Matches] when the requested driver has
	// not been registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] when a nil [Hasher]
	// is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")
)
