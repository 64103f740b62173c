package hashing

import "strings"

// DriverName identifies a hashing algorithm driver.
type DriverName string

const (
	// DriverSHA512 selects the iterated SHA-512 driver (the default).
	DriverSHA512 DriverName = "sha512i"
	// DriverBcrypt selects the bcrypt driver.
	DriverBcrypt DriverName = "bcrypt"
	// DriverArgon2id selects the Argon2id driver.
	DriverArgon2id DriverName = "argon2id"
)

// Hasher is the interface satisfied by every password-hashing driver.
//
// Passwords are opaque bytes; they are never interpreted as text.
// All implementations must be safe for concurrent use.
type Hasher interface {
	// Make hashes password with a fresh salt and returns the encoded
	// credential.  Two calls with the same password produce different output.
	Make(password []byte) (string, error)

	// Check reports whether password matches the encoded credential.
	// It returns (false, nil) on mismatch and (false, err) when the credential
	// is malformed or belongs to another driver.
	Check(password []byte, hash string) (bool, error)

	// NeedsRehash reports whether the credential was produced with parameters
	// other than the hasher's current ones.
	NeedsRehash(hash string) (bool, error)

	// Info extracts the parameters of an encoded credential without checking it.
	Info(hash string) (HashInfo, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// HashInfo carries metadata parsed from an encoded credential.
type HashInfo struct {
	// Driver is the algorithm that produced the credential.
	Driver DriverName

	// Params holds algorithm-specific parameters.
	//
	// For sha512i:
	//   "rounds"   → uint32
	//   "salt_len" → int
	//   "format"   → string ("sha512i", "wasm" or "fallback")
	//
	// For bcrypt:
	//   "cost" → int
	//
	// For argon2id:
	//   "version", "memory", "time", "threads", "key_len"
	Params map[string]any
}

// Encoded credential prefixes.
const (
	prefixSHA512   = "$sha512i$"
	prefixWasm     = "$wasm$"
	prefixFallback = "$fallback$"
	prefixArgon2id = "$argon2id$"
)

// DetectDriver returns the [DriverName] that produced hash, judging by its
// prefix only.  Legacy $wasm$ and $fallback$ credentials map to
// [DriverSHA512].  The second return value is false for unknown formats.
func DetectDriver(hash string) (DriverName, bool) {
	switch {
	case strings.HasPrefix(hash, prefixSHA512),
		strings.HasPrefix(hash, prefixWasm),
		strings.HasPrefix(hash, prefixFallback):
		return DriverSHA512, true
	case strings.HasPrefix(hash, prefixArgon2id):
		return DriverArgon2id, true
	// bcrypt hashes start with $2a$, $2b$, or $2y$
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return DriverBcrypt, true
	default:
		return "", false
	}
}
