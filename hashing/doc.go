// Package hashing provides the digest drivers used to fingerprint ordered
// sequences of names, such as the members of a namedlist.List.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. Three drivers ship with
// this package:
//
//   - [Blake2bHasher]: BLAKE2b, 256-bit by default, optionally keyed
//   - [Blake2sHasher]: BLAKE2s-256, for 32-bit targets
//   - [SHA256Hasher]: SHA-256, for interoperability with external tools
//
// All three implement [Hasher], so callers can depend on the interface rather
// than a concrete type.
//
// The [Manager] is a named driver registry. Register one or more [Hasher]
// implementations, designate a default driver, then compute and verify
// fingerprints through the [Manager].
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager() // blake2b-256 default, all drivers registered
//	if err != nil { log.Fatal(err) }
//
//	fp, _ := m.Fingerprint(slices.Values([]string{"intro", "faq"}))
//	ok, _ := m.Matches(fp, slices.Values([]string{"intro", "faq"})) // true
//
// # Fingerprint format
//
// Fingerprints are rendered as the driver name and the hex digest separated
// by a colon:
//
//	blake2b-256:1f0c…
//
// The driver is self-described, so [Manager.Matches] can verify a stored
// fingerprint even after the default driver has changed.
//
// # Framing
//
// Each part is written length-prefixed, so ["ab", "c"] and ["a", "bc"] never
// collide and an empty part still changes the digest.
package hashing
