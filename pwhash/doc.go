// Package pwhash derives a salted, iterated SHA-512 digest of a password.
//
// # Algorithm
//
// The derivation hashes password||salt once, then re-hashes the previous
// digest followed by the salt for every remaining round:
//
//	d0 = SHA-512(password || salt)
//	dN = SHA-512(dN-1 || salt)        for N in [1, rounds)
//
// Because the salt is mixed into every round, the final digest depends on the
// complete chain and not only on the last step.  [Rounds] (10 000) is the
// fixed work factor used by the foreign-call boundary; [DeriveRounds] accepts
// any count so callers that store the round count next to the digest can
// verify credentials produced under older work factors.
//
// # Output
//
// Digests never leave the package in binary form through the boundary: they
// are rendered as exactly [HexLen] lowercase hexadecimal characters with no
// prefix or separators.
//
// # Salts
//
// This package neither generates nor stores salts.  The caller must supply a
// salt that is unique per credential and persist it next to the digest;
// reusing a salt across credentials re-enables precomputed-table attacks.
//
// # Quick start
//
//	hex := pwhash.Sum([]byte("hunter2"), []byte("abcd"))
//	ok  := pwhash.Verify([]byte("hunter2"), []byte(hex), []byte("abcd")) // true
package pwhash
