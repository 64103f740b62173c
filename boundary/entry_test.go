package boundary_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/git2026/programacao-web/boundary"
	"github.com/git2026/programacao-web/pwhash"
)

func view(s string) boundary.View { return boundary.ViewOf([]byte(s)) }

// ──────────────────────────────────────────────────────────────────────────────
// HashPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestHashPassword_WritesRenderedDigest(t *testing.T) {
	var out boundary.OutputBuffer
	n := boundary.HashPassword(&out, view("hunter2"), view("abcd"))
	if n != pwhash.HexLen {
		t.Fatalf("HashPassword returned %d, want %d", n, pwhash.HexLen)
	}
	got := string(out.Bytes(n))
	if want := pwhash.Sum([]byte("hunter2"), []byte("abcd")); got != want {
		t.Errorf("buffer = %s, want %s", got, want)
	}
	if strings.ToLower(got) != got {
		t.Errorf("digest is not lowercase: %s", got)
	}
}

func TestHashPassword_Overwrites(t *testing.T) {
	var out boundary.OutputBuffer
	n1 := boundary.HashPassword(&out, view("first"), view("salt"))
	first := string(out.Bytes(n1))
	n2 := boundary.HashPassword(&out, view("second"), view("salt"))
	second := string(out.Bytes(n2))
	if n1 != n2 {
		t.Fatalf("lengths differ: %d vs %d", n1, n2)
	}
	if first == second {
		t.Error("second call did not overwrite the buffer")
	}
	if second != pwhash.Sum([]byte("second"), []byte("salt")) {
		t.Error("buffer does not hold the most recent digest")
	}
}

func TestHashPassword_EmptyInputs(t *testing.T) {
	var out boundary.OutputBuffer
	n := boundary.HashPassword(&out, boundary.View{}, boundary.View{})
	if n != pwhash.HexLen {
		t.Fatalf("HashPassword(empty) = %d", n)
	}
	if string(out.Bytes(n)) != pwhash.Sum(nil, nil) {
		t.Error("empty inputs must hash like empty slices")
	}
}

func TestHashPassword_BadViewLeavesBufferUntouched(t *testing.T) {
	var out boundary.OutputBuffer
	out.Store([]byte("sentinel"))

	one := []byte{0}
	bad := []boundary.View{
		{Ptr: nil, Len: 4},
		{Ptr: unsafe.Pointer(&one[0]), Len: boundary.MaxViewLen + 1},
	}
	for _, v := range bad {
		if n := boundary.HashPassword(&out, v, view("salt")); n != 0 {
			t.Errorf("bad password view: got %d, want 0", n)
		}
		if n := boundary.HashPassword(&out, view("pw"), v); n != 0 {
			t.Errorf("bad salt view: got %d, want 0", n)
		}
	}
	if string(out.Bytes(8)) != "sentinel" {
		t.Errorf("buffer modified: %q", out.Bytes(8))
	}
}

func TestShared_StableAddress(t *testing.T) {
	a := boundary.Shared().Ptr()
	boundary.HashPassword(boundary.Shared(), view("pw"), view("salt"))
	if boundary.Shared().Ptr() != a {
		t.Error("shared buffer address changed")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// OutputBuffer capacity guard
// ──────────────────────────────────────────────────────────────────────────────

func TestOutputBuffer_Store_Oversized(t *testing.T) {
	var out boundary.OutputBuffer
	out.Store([]byte("previous"))

	oversized := bytes.Repeat([]byte("a"), boundary.OutputCapacity+1)
	if n := out.Store(oversized); n != 0 {
		t.Fatalf("Store(oversized) = %d, want 0", n)
	}
	if got := string(out.Bytes(8)); got != "previous" {
		t.Errorf("buffer modified after failed store: %q", got)
	}
}

func TestOutputBuffer_Store_ExactCapacity(t *testing.T) {
	var out boundary.OutputBuffer
	full := bytes.Repeat([]byte("f"), boundary.OutputCapacity)
	if n := out.Store(full); n != boundary.OutputCapacity {
		t.Fatalf("Store(full) = %d, want %d", n, boundary.OutputCapacity)
	}
	if !bytes.Equal(out.Bytes(boundary.OutputCapacity), full) {
		t.Error("buffer does not hold the full rendering")
	}
}

func TestOutputBuffer_Bytes_Clamped(t *testing.T) {
	var out boundary.OutputBuffer
	if got := len(out.Bytes(boundary.OutputCapacity * 2)); got != boundary.OutputCapacity {
		t.Errorf("len(Bytes) = %d, want %d", got, boundary.OutputCapacity)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// HashPasswordInto
// ──────────────────────────────────────────────────────────────────────────────

func TestHashPasswordInto(t *testing.T) {
	dst := make([]byte, pwhash.HexLen+10)
	n := boundary.HashPasswordInto(view("hunter2"), view("abcd"), boundary.ViewOf(dst))
	if n != pwhash.HexLen {
		t.Fatalf("HashPasswordInto = %d", n)
	}
	if string(dst[:n]) != pwhash.Sum([]byte("hunter2"), []byte("abcd")) {
		t.Error("wrong digest written")
	}
	if !bytes.Equal(dst[n:], make([]byte, 10)) {
		t.Error("bytes past the digest were modified")
	}
}

func TestHashPasswordInto_TooSmall(t *testing.T) {
	dst := bytes.Repeat([]byte{0x55}, pwhash.HexLen-1)
	if n := boundary.HashPasswordInto(view("pw"), view("salt"), boundary.ViewOf(dst)); n != 0 {
		t.Fatalf("HashPasswordInto = %d, want 0", n)
	}
	if !bytes.Equal(dst, bytes.Repeat([]byte{0x55}, pwhash.HexLen-1)) {
		t.Error("destination modified on failure")
	}
}

func TestHashPasswordInto_DoesNotTouchShared(t *testing.T) {
	boundary.Shared().Store([]byte("untouched"))
	dst := make([]byte, pwhash.HexLen)
	boundary.HashPasswordInto(view("pw"), view("salt"), boundary.ViewOf(dst))
	if string(boundary.Shared().Bytes(9)) != "untouched" {
		t.Error("shared buffer modified")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// VerifyPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyPassword_Scenario(t *testing.T) {
	var out boundary.OutputBuffer
	n := boundary.HashPassword(&out, view("hunter2"), view("abcd"))
	d := string(out.Bytes(n))

	tests := []struct {
		name     string
		password string
		hash     string
		salt     string
		want     int32
	}{
		{"correct", "hunter2", d, "abcd", 1},
		{"wrong password", "hunter3", d, "abcd", 0},
		{"wrong salt", "hunter2", d, "wxyz", 0},
		{"wrong hash", "hunter2", strings.Repeat("0", pwhash.HexLen), "abcd", 0},
		{"empty hash", "hunter2", "", "abcd", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boundary.VerifyPassword(view(tt.password), view(tt.hash), view(tt.salt))
			if got != tt.want {
				t.Errorf("VerifyPassword = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVerifyPassword_InvalidUTF8(t *testing.T) {
	expected := []byte(pwhash.Sum([]byte("pw"), []byte("salt")))
	expected[0] = 0xff
	if got := boundary.VerifyPassword(view("pw"), boundary.ViewOf(expected), view("salt")); got != 0 {
		t.Errorf("VerifyPassword(invalid utf8) = %d, want 0", got)
	}
}

func TestVerifyPassword_BadView(t *testing.T) {
	if got := boundary.VerifyPassword(boundary.View{Len: 3}, view("x"), view("salt")); got != 0 {
		t.Errorf("VerifyPassword(nil view) = %d, want 0", got)
	}
}

func TestVerifyPassword_DoesNotTouchShared(t *testing.T) {
	boundary.Shared().Store([]byte("untouched"))
	boundary.VerifyPassword(view("pw"), view("nope"), view("salt"))
	if string(boundary.Shared().Bytes(9)) != "untouched" {
		t.Error("shared buffer modified")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// View
// ──────────────────────────────────────────────────────────────────────────────

func TestView_Bytes(t *testing.T) {
	src := []byte("hello")
	b, err := boundary.ViewOf(src).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if &b[0] != &src[0] {
		t.Error("Bytes must alias the region, not copy it")
	}

	if _, err := (boundary.View{Len: 1}).Bytes(); !errors.Is(err, boundary.ErrNilView) {
		t.Errorf("nil view: expected ErrNilView, got %v", err)
	}
	big := boundary.View{Ptr: unsafe.Pointer(&src[0]), Len: boundary.MaxViewLen + 1}
	if _, err := big.Bytes(); !errors.Is(err, boundary.ErrViewTooLarge) {
		t.Errorf("oversized view: expected ErrViewTooLarge, got %v", err)
	}
	if b, err := (boundary.View{}).Bytes(); err != nil || b != nil {
		t.Errorf("zero view: got %v, %v", b, err)
	}
}
