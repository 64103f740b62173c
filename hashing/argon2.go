package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	// DefaultArgon2Memory is the default memory cost in KiB (64 MiB).
	DefaultArgon2Memory uint32 = 64 * 1024

	// DefaultArgon2Time is the default number of passes over memory.
	DefaultArgon2Time uint32 = 3

	// DefaultArgon2Threads is the default degree of parallelism.
	DefaultArgon2Threads uint8 = 2

	// DefaultArgon2KeyLen is the default output key length in bytes.
	DefaultArgon2KeyLen uint32 = 32

	// DefaultArgon2SaltLen is the default random salt length in bytes.
	DefaultArgon2SaltLen uint32 = 16

	// MaxArgon2Memory is the largest memory cost in KiB (4 GiB) accepted from
	// a stored credential.
	MaxArgon2Memory uint32 = 4 * 1024 * 1024

	// MaxArgon2Time is the largest pass count accepted from a stored credential.
	MaxArgon2Time uint32 = 1024
)

// Argon2Options configures an [Argon2idHasher].  All parameters except
// SaltLen are encoded into the credential, so changing them only affects
// new credentials.
type Argon2Options struct {
	// Memory is the memory cost in KiB.  Minimum: 8 * Threads.
	Memory uint32

	// Time is the number of passes over memory.  Minimum: 1.
	Time uint32

	// Threads is the degree of parallelism.  Minimum: 1.
	Threads uint8

	// KeyLen is the length of the derived key in bytes.  Minimum: 4.
	KeyLen uint32

	// SaltLen is the length of the random salt in bytes.  Minimum: 8.
	SaltLen uint32
}

// DefaultArgon2Options returns Argon2Options with the recommended defaults.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:  DefaultArgon2Memory,
		Time:    DefaultArgon2Time,
		Threads: DefaultArgon2Threads,
		KeyLen:  DefaultArgon2KeyLen,
		SaltLen: DefaultArgon2SaltLen,
	}
}

func validateArgon2Options(opts Argon2Options) error {
	if opts.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be ≥ 1, got %d", ErrInvalidOption, opts.Time)
	}
	if opts.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be ≥ 1, got %d", ErrInvalidOption, opts.Threads)
	}
	if opts.Memory < 8*uint32(opts.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, opts.Memory, 8*uint32(opts.Threads))
	}
	if opts.KeyLen < 4 {
		return fmt.Errorf("%w: argon2 key_len must be ≥ 4, got %d", ErrInvalidOption, opts.KeyLen)
	}
	if opts.SaltLen < 8 {
		return fmt.Errorf("%w: argon2 salt_len must be ≥ 8, got %d", ErrInvalidOption, opts.SaltLen)
	}
	return nil
}

type argon2Params struct {
	version uint32
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

// encodePHC serialises an Argon2id key in PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt_base64>$<key_base64>
func encodePHC(opts Argon2Options, salt, key []byte) string {
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		prefixArgon2id,
		argon2.Version,
		opts.Memory,
		opts.Time,
		opts.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

// decodePHC parses an Argon2id PHC string.
func decodePHC(encoded string) (*argon2Params, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected 5-segment PHC string, got %d segments",
			ErrInvalidHash, len(parts)-1)
	}
	if parts[1] != string(DriverArgon2id) {
		return nil, fmt.Errorf("%w: unknown argon2 variant %q", ErrInvalidHash, parts[1])
	}

	version, err := parseKV(parts[2], "v")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrInvalidHash, version)
	}

	kvs, err := parseParams(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	memory, ok1 := kvs["m"]
	time, ok2 := kvs["t"]
	threads, ok3 := kvs["p"]
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("%w: missing m/t/p in parameter segment %q", ErrInvalidHash, parts[3])
	}
	if threads < 1 || threads > 255 ||
		time < 1 || time > uint64(MaxArgon2Time) ||
		memory < 8*threads || memory > uint64(MaxArgon2Memory) {
		return nil, fmt.Errorf("%w: parameter out of range in %q", ErrInvalidHash, parts[3])
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid key base64: %v", ErrInvalidHash, err)
	}
	if len(key) < 4 {
		return nil, fmt.Errorf("%w: argon2 key must be at least 4 bytes, got %d", ErrInvalidHash, len(key))
	}

	return &argon2Params{
		version: uint32(version),
		memory:  uint32(memory),
		time:    uint32(time),
		threads: uint8(threads),
		salt:    salt,
		key:     key,
	}, nil
}

// parseParams splits "m=65536,t=3,p=2" into a map.
func parseParams(s string) (map[string]uint64, error) {
	out := make(map[string]uint64)
	for _, kv := range strings.Split(s, ",") {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed param %q", kv)
		}
		v, err := strconv.ParseUint(kv[eq+1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value in %q: %v", kv, err)
		}
		out[kv[:eq]] = v
	}
	return out, nil
}

// Argon2idHasher hashes passwords with Argon2id (RFC 9106).
//
// Argon2idHasher is immutable after construction and safe for concurrent use.
type Argon2idHasher struct {
	opts Argon2Options
}

// NewArgon2idHasher constructs an Argon2idHasher with the given options.
func NewArgon2idHasher(opts Argon2Options) (*Argon2idHasher, error) {
	if err := validateArgon2Options(opts); err != nil {
		return nil, err
	}
	return &Argon2idHasher{opts: opts}, nil
}

// Driver returns [DriverArgon2id].
func (h *Argon2idHasher) Driver() DriverName { return DriverArgon2id }

// Options returns the current Argon2 parameter set.
func (h *Argon2idHasher) Options() Argon2Options { return h.opts }

// Make hashes password with Argon2id and a fresh random salt.
func (h *Argon2idHasher) Make(password []byte) (string, error) {
	salt, err := randomSalt(rand.Reader, h.opts.SaltLen)
	if err != nil {
		return "", err
	}
	key := argon2.IDKey(password, salt, h.opts.Time, h.opts.Memory, h.opts.Threads, h.opts.KeyLen)
	return encodePHC(h.opts, salt, key), nil
}

// Check verifies password against an Argon2id credential, using the
// parameters stored in it.
func (h *Argon2idHasher) Check(password []byte, hash string) (bool, error) {
	p, err := h.decode(hash)
	if err != nil {
		return false, err
	}
	computed := argon2.IDKey(password, p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(computed, p.key) == 1, nil
}

// NeedsRehash returns true if any stored parameter differs from the
// hasher's configuration.
func (h *Argon2idHasher) NeedsRehash(hash string) (bool, error) {
	p, err := h.decode(hash)
	if err != nil {
		return false, err
	}
	return p.memory != h.opts.Memory ||
		p.time != h.opts.Time ||
		p.threads != h.opts.Threads ||
		uint32(len(p.key)) != h.opts.KeyLen, nil
}

// Info returns the parameters stored in an Argon2id credential.
func (h *Argon2idHasher) Info(hash string) (HashInfo, error) {
	p, err := h.decode(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverArgon2id,
		Params: map[string]any{
			"version": int(p.version),
			"memory":  p.memory,
			"time":    p.time,
			"threads": p.threads,
			"key_len": uint32(len(p.key)),
		},
	}, nil
}

func (h *Argon2idHasher) decode(hash string) (*argon2Params, error) {
	if d, ok := DetectDriver(hash); ok && d != DriverArgon2id {
		return nil, fmt.Errorf("%w: hash is %s, not %s", ErrAlgorithmMismatch, d, DriverArgon2id)
	}
	return decodePHC(hash)
}
