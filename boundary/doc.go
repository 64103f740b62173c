// Package boundary exposes the [pwhash] derivation to a host that can only
// exchange raw addresses, lengths and integers.
//
// # Unsafe preconditions
//
// Every entry point takes [View] values built from host-supplied
// (pointer, length) pairs.  The host guarantees that each view addresses at
// least Len readable bytes (writable for the owned-output variant) for the
// whole duration of the call and that no other code mutates the region
// meanwhile.  Violating this is undefined behaviour, not a recoverable
// error.  The package only rejects the cases it can detect cheaply: a nil
// pointer with a non-zero length and lengths above [MaxViewLen].
//
// # Shared output buffer
//
// [HashPassword] writes into a fixed [OutputCapacity]-byte [OutputBuffer].
// The process-wide instance returned by [Shared] lives for the lifetime of
// the process, is overwritten by every hash call and is never freed.  It is
// NOT safe for concurrent or re-entrant use: the host must read the reported
// number of bytes before issuing another hash call and must serialise callers
// itself.  Hosts that cannot guarantee this should use [HashPasswordInto],
// which writes into a caller-owned region instead.
//
// # Salts
//
// Salts are never generated or stored here.  The host supplies a salt that is
// unique per credential and persists it next to the returned digest.
package boundary
