package pwhash

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"unicode/utf8"
)

const (
	// Rounds is the fixed number of SHA-512 applications, the initial digest
	// included.  Hash and verify must agree on it or every verification fails.
	Rounds uint32 = 10000

	// Size is the length of a derived digest in bytes.
	Size = sha512.Size

	// HexLen is the length of a rendered digest: two characters per byte.
	HexLen = 2 * Size
)

// Digest is the binary output of a derivation.
type Digest [Size]byte

// Hex renders d as HexLen lowercase hexadecimal characters.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Derive computes the digest of password and salt using [Rounds] rounds.
// It is deterministic: the same inputs always produce the same digest.
func Derive(password, salt []byte) Digest {
	return DeriveRounds(password, salt, Rounds)
}

// DeriveRounds computes the digest of password and salt using the given
// number of rounds.  A count of 0 is treated as 1; the initial digest over
// password||salt is always computed.
func DeriveRounds(password, salt []byte, rounds uint32) Digest {
	combined := make([]byte, 0, len(password)+len(salt))
	combined = append(combined, password...)
	combined = append(combined, salt...)

	var d Digest = sha512.Sum512(combined)

	h := sha512.New()
	for i := uint32(1); i < rounds; i++ {
		h.Reset()
		h.Write(d[:])
		h.Write(salt)
		h.Sum(d[:0])
	}
	return d
}

// AppendHex appends the lowercase hexadecimal rendering of d to dst and
// returns the extended slice.
func AppendHex(dst []byte, d Digest) []byte {
	return hex.AppendEncode(dst, d[:])
}

// Sum derives the digest of password and salt with [Rounds] rounds and
// returns its hexadecimal rendering.  The returned string is owned by the
// caller.
func Sum(password, salt []byte) string {
	return Derive(password, salt).Hex()
}

// Verify re-derives the digest of password and salt with [Rounds] rounds and
// reports whether its hexadecimal rendering equals expected.
//
// expected is interpreted as UTF-8 text.  Bytes that are not valid UTF-8 are
// treated as a mismatch rather than an error.
func Verify(password, expected, salt []byte) bool {
	return VerifyRounds(password, expected, salt, Rounds)
}

// VerifyRounds is [Verify] with an explicit round count.
func VerifyRounds(password, expected, salt []byte, rounds uint32) bool {
	if !utf8.Valid(expected) {
		return false
	}
	if len(expected) != HexLen {
		return false
	}
	var buf [HexLen]byte
	computed := AppendHex(buf[:0], DeriveRounds(password, salt, rounds))
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
