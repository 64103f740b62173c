package boundary

import (
	"github.com/git2026/programacao-web/pwhash"
)

// HashPassword derives the digest of password and salt, renders it as
// lowercase hex and stores it in out.  It returns the number of bytes written
// ([pwhash.HexLen]) or 0 when a view is unusable or the rendering does not fit
// the buffer; on failure out is left untouched.
func HashPassword(out *OutputBuffer, password, salt View) uint32 {
	rendered, ok := render(password, salt)
	if !ok {
		return 0
	}
	return out.Store(rendered)
}

// HashPasswordInto is the re-entrant form of [HashPassword]: it writes the
// rendered digest into the caller-owned region dst.  It returns 0 and writes
// nothing when dst is shorter than [pwhash.HexLen] or a view is unusable.
func HashPasswordInto(password, salt, dst View) uint32 {
	if dst.Len < pwhash.HexLen {
		return 0
	}
	out, err := dst.Bytes()
	if err != nil {
		return 0
	}
	rendered, ok := render(password, salt)
	if !ok {
		return 0
	}
	return uint32(copy(out, rendered))
}

// VerifyPassword re-derives the digest of password and salt and compares its
// hex rendering with the text in expected.  It returns 1 on an exact match
// and 0 otherwise, including when expected is not valid UTF-8 or a view is
// unusable.  It never touches the shared output buffer.
func VerifyPassword(password, expected, salt View) int32 {
	pw, err := password.Bytes()
	if err != nil {
		return 0
	}
	want, err := expected.Bytes()
	if err != nil {
		return 0
	}
	s, err := salt.Bytes()
	if err != nil {
		return 0
	}
	if pwhash.Verify(pw, want, s) {
		return 1
	}
	return 0
}

func render(password, salt View) ([]byte, bool) {
	pw, err := password.Bytes()
	if err != nil {
		return nil, false
	}
	s, err := salt.Bytes()
	if err != nil {
		return nil, false
	}
	var buf [pwhash.HexLen]byte
	return pwhash.AppendHex(buf[:0], pwhash.Derive(pw, s)), true
}
