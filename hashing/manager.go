package hashing

import (
	"crypto/subtle"
	"fmt"
	"iter"
	"slices"
	"sync"
)

// Manager is a thread-safe driver registry for fingerprint digests.
//
// Register one or more named [Hasher] implementations, nominate a default
// driver, and then call [Manager.Fingerprint] / [Manager.Matches] through the
// Manager.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver) while
// allowing concurrent reads (Fingerprint, Matches, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered with [Manager.RegisterDriver] before any
// operation is invoked through the Manager.
//
// Use [NewDefaultManager] for the variant that registers all built-in
// drivers.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with blake2b-256, blake2b-512,
// blake2s-256 and sha256 registered. The default driver is
// [DriverBlake2b256].
func NewDefaultManager() (*Manager, error) {
	b256, err := NewBlake2bHasher(DefaultBlake2bOptions())
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default blake2b-256 hasher: %w", err)
	}
	b512, err := NewBlake2bHasher(Blake2bOptions{Size: 64})
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default blake2b-512 hasher: %w", err)
	}
	s256, err := NewBlake2sHasher(nil)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default blake2s-256 hasher: %w", err)
	}

	m := NewManager(DriverBlake2b256)
	_ = m.RegisterDriver(DriverBlake2b256, b256)
	_ = m.RegisterDriver(DriverBlake2b512, b512)
	_ = m.RegisterDriver(DriverBlake2s256, s256)
	_ = m.RegisterDriver(DriverSHA256, SHA256Hasher{})
	return m, nil
}

// RegisterDriver adds or replaces a named hasher in the Manager.
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound]
// if no such driver has been registered.
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Fingerprint].
// The named driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Drivers returns the registered driver names in sorted order.
func (m *Manager) Drivers() []DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]DriverName, 0, len(m.drivers))
	for name := range m.drivers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default returns the default [Hasher].
func (m *Manager) Default() (Hasher, error) {
	_, h, err := m.resolveDefault()
	return h, err
}

// Fingerprint digests parts with the default driver and returns the
// formatted fingerprint (see [FormatFingerprint]). The prefix is the name
// the driver is registered under.
func (m *Manager) Fingerprint(parts iter.Seq[string]) (string, error) {
	name, h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return FormatFingerprint(name, Fingerprint(h, parts)), nil
}

// Matches reports whether fingerprint was produced from parts. The driver is
// taken from the fingerprint itself, so fingerprints produced under an
// earlier default keep verifying.
//
// Returns [ErrInvalidFingerprint] for malformed input and
// [ErrDriverNotFound] if the fingerprint's driver is not registered.
func (m *Manager) Matches(fingerprint string, parts iter.Seq[string]) (bool, error) {
	driver, want, err := ParseFingerprint(fingerprint)
	if err != nil {
		return false, err
	}
	h, err := m.Driver(driver)
	if err != nil {
		return false, err
	}
	got := Fingerprint(h, parts)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

func (m *Manager) resolveDefault() (DriverName, Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return "", nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return m.def, h, nil
}
