//go:build wasip1

// Command passhash-wasm is a WebAssembly reactor exposing the password
// digest to a JavaScript (or any wasm) host.
//
// Build with:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o password_hash.wasm ./cmd/passhash-wasm
//
// Host protocol:
//
//  1. p := alloc(n) for every input; write the bytes at p.
//  2. n := hash_password(pw, pwLen, salt, saltLen); read n bytes at
//     get_output_buffer() BEFORE the next hash_password call.
//  3. dealloc(p) for every input.
//
// All pointer arguments must address at least the given number of bytes for
// the duration of the call; anything else is undefined behaviour.  The shared
// output buffer is a single slot: callers running more than one hash at a
// time must serialise themselves or use hash_password_into.
package main

import (
	"unsafe"

	"github.com/git2026/programacao-web/boundary"
)

var arena = boundary.NewArena()

//go:wasmexport hash_password
func hashPassword(passwordPtr unsafe.Pointer, passwordLen uint32, saltPtr unsafe.Pointer, saltLen uint32) uint32 {
	return boundary.HashPassword(boundary.Shared(),
		boundary.View{Ptr: passwordPtr, Len: passwordLen},
		boundary.View{Ptr: saltPtr, Len: saltLen},
	)
}

//go:wasmexport get_output_buffer
func getOutputBuffer() unsafe.Pointer {
	return boundary.Shared().Ptr()
}

//go:wasmexport verify_password
func verifyPassword(passwordPtr unsafe.Pointer, passwordLen uint32, hashPtr unsafe.Pointer, hashLen uint32, saltPtr unsafe.Pointer, saltLen uint32) int32 {
	return boundary.VerifyPassword(
		boundary.View{Ptr: passwordPtr, Len: passwordLen},
		boundary.View{Ptr: hashPtr, Len: hashLen},
		boundary.View{Ptr: saltPtr, Len: saltLen},
	)
}

//go:wasmexport hash_password_into
func hashPasswordInto(passwordPtr unsafe.Pointer, passwordLen uint32, saltPtr unsafe.Pointer, saltLen uint32, outPtr unsafe.Pointer, outCap uint32) uint32 {
	return boundary.HashPasswordInto(
		boundary.View{Ptr: passwordPtr, Len: passwordLen},
		boundary.View{Ptr: saltPtr, Len: saltLen},
		boundary.View{Ptr: outPtr, Len: outCap},
	)
}

//go:wasmexport alloc
func alloc(size uint32) unsafe.Pointer {
	return arena.Alloc(size)
}

//go:wasmexport dealloc
func dealloc(p unsafe.Pointer) int32 {
	if arena.Free(p) {
		return 1
	}
	return 0
}

func main() {}
