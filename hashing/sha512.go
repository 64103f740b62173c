package hashing

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/git2026/programacao-web/pwhash"
)

const (
	// DefaultSHA512Rounds is the default work factor.  It equals the fixed
	// count used by the foreign-call boundary, so credentials made here verify
	// there and vice versa.
	DefaultSHA512Rounds = pwhash.Rounds

	// DefaultSHA512SaltLen is the default random salt length in bytes.
	DefaultSHA512SaltLen uint32 = 16

	// legacyWasmRounds is the implicit round count of $wasm$ credentials.
	legacyWasmRounds uint32 = 10000

	// MaxSHA512Rounds bounds the round count accepted from options and from
	// stored credentials.
	MaxSHA512Rounds uint32 = 10_000_000
)

// SHA512Options configures a [SHA512Hasher].
type SHA512Options struct {
	// Rounds is the number of SHA-512 applications, the first included.
	// Minimum: 1.  Default: [DefaultSHA512Rounds].
	Rounds uint32

	// SaltLen is the length of the salt Make reads from SaltSource.
	// Minimum: 8.  Default: [DefaultSHA512SaltLen].
	SaltLen uint32

	// SaltSource supplies salt bytes for Make.  Nil means crypto/rand.
	SaltSource io.Reader
}

// DefaultSHA512Options returns SHA512Options with the recommended defaults.
func DefaultSHA512Options() SHA512Options {
	return SHA512Options{
		Rounds:  DefaultSHA512Rounds,
		SaltLen: DefaultSHA512SaltLen,
	}
}

func validateSHA512Options(opts SHA512Options) error {
	if opts.Rounds < 1 {
		return fmt.Errorf("%w: sha512i rounds must be ≥ 1, got %d", ErrInvalidOption, opts.Rounds)
	}
	if opts.Rounds > MaxSHA512Rounds {
		return fmt.Errorf("%w: sha512i rounds must be ≤ %d, got %d", ErrInvalidOption, MaxSHA512Rounds, opts.Rounds)
	}
	if opts.SaltLen < 8 {
		return fmt.Errorf("%w: sha512i salt_len must be ≥ 8, got %d", ErrInvalidOption, opts.SaltLen)
	}
	return nil
}

// sha512Params holds the fields decoded from a sha512i or legacy credential.
type sha512Params struct {
	format string
	rounds uint32
	salt   []byte
	digest string
}

// encodeSHA512 serialises a credential as
//
//	$sha512i$r=<rounds>$<salt_base64>$<digest_hex>
func encodeSHA512(rounds uint32, salt []byte, digest pwhash.Digest) string {
	var b strings.Builder
	b.Grow(len(prefixSHA512) + 16 + base64.RawStdEncoding.EncodedLen(len(salt)) + pwhash.HexLen)
	b.WriteString(prefixSHA512)
	b.WriteString("r=")
	b.WriteString(strconv.FormatUint(uint64(rounds), 10))
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(salt))
	b.WriteByte('$')
	b.WriteString(digest.Hex())
	return b.String()
}

// decodeSHA512 parses the current and both legacy credential forms.
func decodeSHA512(encoded string) (*sha512Params, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) < 4 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected $-delimited credential", ErrInvalidHash)
	}

	p := &sha512Params{format: parts[1]}
	var saltField string
	switch p.format {
	case string(DriverSHA512):
		if len(parts) != 5 {
			return nil, fmt.Errorf("%w: expected 4-segment sha512i string, got %d segments",
				ErrInvalidHash, len(parts)-1)
		}
		r, err := parseKV(parts[2], "r")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
		}
		if r < 1 || r > uint64(MaxSHA512Rounds) {
			return nil, fmt.Errorf("%w: round count %d out of range", ErrInvalidHash, r)
		}
		p.rounds = uint32(r)
		saltField = parts[3]
	case "wasm", "fallback":
		if len(parts) != 4 {
			return nil, fmt.Errorf("%w: expected 3-segment %s string, got %d segments",
				ErrInvalidHash, p.format, len(parts)-1)
		}
		p.rounds = legacyWasmRounds
		if p.format == "fallback" {
			p.rounds = 1
		}
		saltField = parts[2]
	default:
		return nil, fmt.Errorf("%w: unknown sha512 variant %q", ErrInvalidHash, p.format)
	}

	var err error
	if p.format == string(DriverSHA512) {
		p.salt, err = base64.RawStdEncoding.DecodeString(saltField)
	} else {
		p.salt, err = base64.StdEncoding.DecodeString(saltField)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidHash, err)
	}

	// Legacy digests go to the comparison as stored; a malformed one is a
	// mismatch, not a decode error.
	p.digest = parts[len(parts)-1]
	if p.format == string(DriverSHA512) && !isLowerHex(p.digest, pwhash.HexLen) {
		return nil, fmt.Errorf("%w: digest must be %d lowercase hex characters", ErrInvalidHash, pwhash.HexLen)
	}
	return p, nil
}

func isLowerHex(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// randomSalt reads n bytes from r.
func randomSalt(r io.Reader, n uint32) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("hashing: failed to generate salt: %w", err)
	}
	return b, nil
}

// SHA512Hasher stores passwords as iterated, salted SHA-512 digests.
//
// Output format: $sha512i$r=<rounds>$<salt>$<hex>.  Check also accepts the
// legacy $wasm$ and $fallback$ forms.
//
// SHA512Hasher is immutable after construction and safe for concurrent use
// as long as SaltSource is.
type SHA512Hasher struct {
	opts SHA512Options
}

// NewSHA512Hasher constructs a SHA512Hasher with the given options.
func NewSHA512Hasher(opts SHA512Options) (*SHA512Hasher, error) {
	if err := validateSHA512Options(opts); err != nil {
		return nil, err
	}
	if opts.SaltSource == nil {
		opts.SaltSource = rand.Reader
	}
	return &SHA512Hasher{opts: opts}, nil
}

// Driver returns [DriverSHA512].
func (h *SHA512Hasher) Driver() DriverName { return DriverSHA512 }

// Options returns the configured parameters.
func (h *SHA512Hasher) Options() SHA512Options { return h.opts }

// Make hashes password with a salt read from the configured source.
func (h *SHA512Hasher) Make(password []byte) (string, error) {
	salt, err := randomSalt(h.opts.SaltSource, h.opts.SaltLen)
	if err != nil {
		return "", err
	}
	return h.MakeWithSalt(password, salt)
}

// MakeWithSalt hashes password with a caller-supplied salt.  The caller is
// responsible for the salt being unique per credential.
func (h *SHA512Hasher) MakeWithSalt(password, salt []byte) (string, error) {
	if len(salt) == 0 {
		return "", fmt.Errorf("%w: salt must not be empty", ErrInvalidOption)
	}
	d := pwhash.DeriveRounds(password, salt, h.opts.Rounds)
	return encodeSHA512(h.opts.Rounds, salt, d), nil
}

// Check verifies password against a sha512i, $wasm$ or $fallback$
// credential.  The round count is taken from the credential, not from the
// hasher's options.
func (h *SHA512Hasher) Check(password []byte, hash string) (bool, error) {
	p, err := h.decode(hash)
	if err != nil {
		return false, err
	}
	return pwhash.VerifyRounds(password, []byte(p.digest), p.salt, p.rounds), nil
}

// NeedsRehash returns true for legacy credentials and for sha512i
// credentials whose round count differs from the configured one.
func (h *SHA512Hasher) NeedsRehash(hash string) (bool, error) {
	p, err := h.decode(hash)
	if err != nil {
		return false, err
	}
	return p.format != string(DriverSHA512) || p.rounds != h.opts.Rounds, nil
}

// Info parses the credential and returns its parameters.
//
// Returned [HashInfo].Params:
//   - "rounds"   → uint32
//   - "salt_len" → int
//   - "format"   → string
func (h *SHA512Hasher) Info(hash string) (HashInfo, error) {
	p, err := h.decode(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverSHA512,
		Params: map[string]any{
			"rounds":   p.rounds,
			"salt_len": len(p.salt),
			"format":   p.format,
		},
	}, nil
}

func (h *SHA512Hasher) decode(hash string) (*sha512Params, error) {
	if d, ok := DetectDriver(hash); ok && d != DriverSHA512 {
		return nil, fmt.Errorf("%w: hash is %s, not %s", ErrAlgorithmMismatch, d, DriverSHA512)
	}
	return decodeSHA512(hash)
}

// parseKV parses a "key=value" string and returns the uint64 value.
func parseKV(s, key string) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	return strconv.ParseUint(s[len(prefix):], 10, 64)
}
