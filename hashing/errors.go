package hashing

import "errors"

// Sentinel errors returned by hashing operations.  Compare with [errors.Is]:
//
//	ok, err := m.CheckWithDetect(password, stored)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // stored credential is malformed
//	}
var (
	// ErrInvalidHash is returned when an encoded credential cannot be parsed.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor or MakeWithSalt receives
	// a value outside the allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrDriverNotFound is returned when the requested driver is not registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] for an empty name.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] for a nil [Hasher].
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrAlgorithmMismatch is returned when a credential was produced by a
	// different driver than the one asked to handle it.
	ErrAlgorithmMismatch = errors.New("hashing: hash was produced by a different algorithm")
)
