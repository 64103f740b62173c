package hashing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/git2026/programacao-web/hashing"
)

// fastArgon2Opts returns minimal Argon2 parameters for unit tests.
// These are intentionally weak; do NOT use in production.
func fastArgon2Opts() hashing.Argon2Options {
	return hashing.Argon2Options{
		Memory:  8 * 2, // 8 × Threads minimum
		Time:    1,
		Threads: 2,
		KeyLen:  16,
		SaltLen: 8,
	}
}

func newTestArgon2idHasher(t *testing.T) *hashing.Argon2idHasher {
	t.Helper()
	h, err := hashing.NewArgon2idHasher(fastArgon2Opts())
	if err != nil {
		t.Fatalf("NewArgon2idHasher: %v", err)
	}
	return h
}

func TestNewArgon2idHasher_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts hashing.Argon2Options
	}{
		{"time=0", hashing.Argon2Options{Memory: 64, Time: 0, Threads: 1, KeyLen: 16, SaltLen: 8}},
		{"threads=0", hashing.Argon2Options{Memory: 64, Time: 1, Threads: 0, KeyLen: 16, SaltLen: 8}},
		{"memory too low", hashing.Argon2Options{Memory: 1, Time: 1, Threads: 2, KeyLen: 16, SaltLen: 8}},
		{"key_len<4", hashing.Argon2Options{Memory: 64, Time: 1, Threads: 1, KeyLen: 3, SaltLen: 8}},
		{"salt_len<8", hashing.Argon2Options{Memory: 64, Time: 1, Threads: 1, KeyLen: 16, SaltLen: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hashing.NewArgon2idHasher(tt.opts)
			if !errors.Is(err, hashing.ErrInvalidOption) {
				t.Errorf("expected ErrInvalidOption, got %v", err)
			}
		})
	}
}

func TestDefaultArgon2Options(t *testing.T) {
	opts := hashing.DefaultArgon2Options()
	if opts.Memory != hashing.DefaultArgon2Memory {
		t.Errorf("Memory = %d, want %d", opts.Memory, hashing.DefaultArgon2Memory)
	}
	if opts.Time != hashing.DefaultArgon2Time {
		t.Errorf("Time = %d, want %d", opts.Time, hashing.DefaultArgon2Time)
	}
	if opts.Threads != hashing.DefaultArgon2Threads {
		t.Errorf("Threads = %d, want %d", opts.Threads, hashing.DefaultArgon2Threads)
	}
}

func TestArgon2idHasher_Make_PHCFormat(t *testing.T) {
	h := newTestArgon2idHasher(t)
	hash, err := h.Make([]byte("password"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=16,t=1,p=2$") {
		t.Errorf("unexpected PHC prefix: %q", hash)
	}
}

func TestArgon2idHasher_Make_UniqueHashes(t *testing.T) {
	h := newTestArgon2idHasher(t)
	h1, _ := h.Make([]byte("same"))
	h2, _ := h.Make([]byte("same"))
	if h1 == h2 {
		t.Error("two Make calls must produce different hashes (different salts)")
	}
}

func TestArgon2idHasher_Check(t *testing.T) {
	h := newTestArgon2idHasher(t)
	hash, _ := h.Make([]byte("secret"))

	ok, err := h.Check([]byte("secret"), hash)
	if err != nil || !ok {
		t.Fatalf("correct password: ok=%v err=%v", ok, err)
	}
	ok, err = h.Check([]byte("wrong"), hash)
	if err != nil || ok {
		t.Fatalf("wrong password: ok=%v err=%v", ok, err)
	}
}

func TestArgon2idHasher_Check_InvalidHash(t *testing.T) {
	h := newTestArgon2idHasher(t)
	cases := []string{
		"not-a-hash",
		"$argon2id$v=19$m=16,t=1$c2FsdHNhbHQ$a2V5",
		"$argon2id$v=19$m=16,t=1,p=0$c2FsdHNhbHQ$a2V5",
		"$argon2id$x=19$m=16,t=1,p=1$c2FsdHNhbHQ$a2V5",
		"$argon2id$v=19$m=16,t=1,p=1$!!$a2V5",
		"$argon2id$v=19$m=8,t=0,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHQ$",
		"$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHQ$a2V5",
		"$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8,t=4294967295,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8,t=1,p=2$c2FsdHNhbHQ$a2V5a2V5a2V5",
		"$argon2id$v=16$m=16,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5",
	}
	for _, c := range cases {
		if _, err := h.Check([]byte("pw"), c); !errors.Is(err, hashing.ErrInvalidHash) {
			t.Errorf("%q: expected ErrInvalidHash, got %v", c, err)
		}
	}
}

func TestArgon2idHasher_MalformedParamsThroughManager(t *testing.T) {
	m := newTestManager(t)
	cases := []string{
		"$argon2id$v=19$m=8,t=0,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHQ$",
		"$argon2id$v=16$m=16,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5",
	}
	for _, c := range cases {
		if ok, err := m.CheckWithDetect([]byte("pw"), c); ok || !errors.Is(err, hashing.ErrInvalidHash) {
			t.Errorf("CheckWithDetect(%q): ok=%v err=%v", c, ok, err)
		}
		if _, err := m.InfoWithDetect(c); !errors.Is(err, hashing.ErrInvalidHash) {
			t.Errorf("InfoWithDetect(%q): expected ErrInvalidHash, got %v", c, err)
		}
	}
}

func TestArgon2idHasher_Check_OtherDriver(t *testing.T) {
	h := newTestArgon2idHasher(t)
	sha := newTestSHA512Hasher(t)
	hash, _ := sha.Make([]byte("pw"))
	if _, err := h.Check([]byte("pw"), hash); !errors.Is(err, hashing.ErrAlgorithmMismatch) {
		t.Errorf("expected ErrAlgorithmMismatch, got %v", err)
	}
}

func TestArgon2idHasher_NeedsRehash(t *testing.T) {
	opts := fastArgon2Opts()
	h1, _ := hashing.NewArgon2idHasher(opts)
	hash, _ := h1.Make([]byte("pw"))

	if needs, err := h1.NeedsRehash(hash); err != nil || needs {
		t.Errorf("same params: needs=%v err=%v", needs, err)
	}

	opts.Time = 2
	h2, _ := hashing.NewArgon2idHasher(opts)
	if needs, err := h2.NeedsRehash(hash); err != nil || !needs {
		t.Errorf("different time: needs=%v err=%v", needs, err)
	}

	opts = fastArgon2Opts()
	opts.KeyLen = 32
	h3, _ := hashing.NewArgon2idHasher(opts)
	if needs, err := h3.NeedsRehash(hash); err != nil || !needs {
		t.Errorf("different key_len: needs=%v err=%v", needs, err)
	}
}

func TestArgon2idHasher_Info(t *testing.T) {
	h := newTestArgon2idHasher(t)
	hash, _ := h.Make([]byte("pw"))
	info, err := h.Info(hash)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Driver != hashing.DriverArgon2id {
		t.Errorf("Driver = %q, want %q", info.Driver, hashing.DriverArgon2id)
	}
	opts := fastArgon2Opts()
	if got := info.Params["memory"].(uint32); got != opts.Memory {
		t.Errorf("memory = %d, want %d", got, opts.Memory)
	}
	if got := info.Params["threads"].(uint8); got != opts.Threads {
		t.Errorf("threads = %d, want %d", got, opts.Threads)
	}
	if got := info.Params["key_len"].(uint32); got != opts.KeyLen {
		t.Errorf("key_len = %d, want %d", got, opts.KeyLen)
	}
	if got := info.Params["version"].(int); got != 19 {
		t.Errorf("version = %d, want 19", got)
	}
}

func TestArgon2idHasher_Driver(t *testing.T) {
	h := newTestArgon2idHasher(t)
	if h.Driver() != hashing.DriverArgon2id {
		t.Errorf("got %q, want %q", h.Driver(), hashing.DriverArgon2id)
	}
	var _ hashing.Hasher = h
}
