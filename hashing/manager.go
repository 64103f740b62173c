package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher.
//
// Register named [Hasher] implementations, nominate a default driver, and
// route Make / Check / NeedsRehash through the Manager.  Writes
// (RegisterDriver, SetDefaultDriver) take an exclusive lock; everything else
// takes a shared one.
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// The driver must be registered before any hashing call.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager registers the three built-in drivers with their default
// options and selects [DriverSHA512] as the default.
func NewDefaultManager() (*Manager, error) {
	return NewManagerWithOptions(DriverSHA512, DefaultSHA512Options(), DefaultBcryptOptions(), DefaultArgon2Options())
}

// NewManagerWithOptions registers the three built-in drivers with the given
// options and selects def as the default.
func NewManagerWithOptions(def DriverName, sha SHA512Options, bc BcryptOptions, a2 Argon2Options) (*Manager, error) {
	shaH, err := NewSHA512Hasher(sha)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create sha512i hasher: %w", err)
	}
	bcryptH, err := NewBcryptHasher(bc)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create bcrypt hasher: %w", err)
	}
	argon2idH, err := NewArgon2idHasher(a2)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create argon2id hasher: %w", err)
	}

	m := NewManager(DriverSHA512)
	_ = m.RegisterDriver(DriverSHA512, shaH)
	_ = m.RegisterDriver(DriverBcrypt, bcryptH)
	_ = m.RegisterDriver(DriverArgon2id, argon2idH)
	if err := m.SetDefaultDriver(def); err != nil {
		return nil, err
	}
	return m, nil
}

// RegisterDriver adds or replaces a named hasher.
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

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the default driver.  The driver must already be
// registered.
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

// DefaultDriver returns the name of the default driver.
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

// Make hashes password using the default driver.
func (m *Manager) Make(password []byte) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash using the default driver.
func (m *Manager) Check(password []byte, hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// CheckWithDetect verifies password using the driver that produced hash.
//
// Returns [ErrInvalidHash] if the format is unrecognised and
// [ErrDriverNotFound] if the detected driver is not registered.
func (m *Manager) CheckWithDetect(password []byte, hash string) (bool, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be replaced on the next
// successful login: either it came from a driver other than the default, or
// the default driver says its parameters are stale.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectDriver(hash)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	if detected != def {
		return true, nil
	}

	h, err := m.Driver(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

// Info extracts metadata from hash using the default driver.
func (m *Manager) Info(hash string) (HashInfo, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// InfoWithDetect extracts metadata from hash using the driver that produced it.
func (m *Manager) InfoWithDetect(hash string) (HashInfo, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByHash(hash string) (Hasher, error) {
	name, ok := DetectDriver(hash)
	if !ok {
		return nil, ErrInvalidHash
	}
	return m.Driver(name)
}
