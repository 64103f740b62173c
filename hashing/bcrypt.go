package hashing

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the default bcrypt work factor.
const DefaultBcryptCost = 12

// BcryptOptions configures a [BcryptHasher].
type BcryptOptions struct {
	// Cost is the logarithmic work factor, in [bcrypt.MinCost, bcrypt.MaxCost].
	Cost int
}

// DefaultBcryptOptions returns BcryptOptions with [DefaultBcryptCost].
func DefaultBcryptOptions() BcryptOptions {
	return BcryptOptions{Cost: DefaultBcryptCost}
}

// BcryptHasher hashes passwords with bcrypt.  bcrypt generates and embeds
// its own 16-byte salt.
//
// Passwords longer than 72 bytes are rejected by bcrypt; Make surfaces that
// as an error instead of truncating.
//
// BcryptHasher is immutable after construction and safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a BcryptHasher.  It returns [ErrInvalidOption]
// if Cost is outside [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasher(opts BcryptOptions) (*BcryptHasher, error) {
	if opts.Cost < bcrypt.MinCost || opts.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: opts.Cost}, nil
}

// Driver returns [DriverBcrypt].
func (h *BcryptHasher) Driver() DriverName { return DriverBcrypt }

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Make hashes password and returns the Modular Crypt Format string.
func (h *BcryptHasher) Make(password []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Check verifies password against a bcrypt credential.
func (h *BcryptHasher) Check(password []byte, hash string) (bool, error) {
	if err := h.expect(hash); err != nil {
		return false, err
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), password)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return true, nil
}

// NeedsRehash returns true if the stored cost differs from the configured one.
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	cost, err := h.storedCost(hash)
	if err != nil {
		return false, err
	}
	return cost != h.cost, nil
}

// Info returns the work factor stored in a bcrypt credential.
func (h *BcryptHasher) Info(hash string) (HashInfo, error) {
	cost, err := h.storedCost(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverBcrypt,
		Params: map[string]any{"cost": cost},
	}, nil
}

func (h *BcryptHasher) storedCost(hash string) (int, error) {
	if err := h.expect(hash); err != nil {
		return 0, err
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return cost, nil
}

func (h *BcryptHasher) expect(hash string) error {
	if d, ok := DetectDriver(hash); !ok || d != DriverBcrypt {
		return fmt.Errorf("%w: hash does not appear to be bcrypt", ErrAlgorithmMismatch)
	}
	return nil
}
