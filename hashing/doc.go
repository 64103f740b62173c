// Package hashing stores and checks password credentials on top of the
// iterated SHA-512 derivation in package pwhash, with bcrypt and Argon2id
// available as upgrade targets.
//
// # Architecture
//
// Every algorithm implements [Hasher].  Three drivers ship with this package:
//
//   - [SHA512Hasher]: iterated, salted SHA-512 with the round count stored in
//     the encoded credential.  Also verifies the two legacy forms written by
//     earlier hosts (see below).
//   - [BcryptHasher]: bcrypt, for hosts migrating to a standard scheme.
//   - [Argon2idHasher]: Argon2id, the memory-hard option.
//
// The [Manager] is a named driver registry.  Register drivers, pick a default,
// and route everything through it; [Manager.CheckWithDetect] dispatches on the
// credential prefix so several formats can coexist during a migration.
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager() // sha512i default, all drivers registered
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := m.Make([]byte("my-secret-password"))
//	ok, _   := m.Check([]byte("my-secret-password"), hash) // true
//
// # Credential formats
//
//	$sha512i$r=10000$<base64-salt>$<128 hex>   current form, base64 without padding
//	$wasm$<base64-salt>$<128 hex>              legacy, implicit 10000 rounds
//	$fallback$<base64-salt>$<128 hex>          legacy, one SHA-512 of password||salt
//
// Legacy salts use padded standard base64.  Both legacy forms verify but
// always report [Manager.NeedsRehash] as true, as does a sha512i credential
// whose round count differs from the configured one:
//
//	ok, _ := m.CheckWithDetect(password, stored)
//	if ok {
//	    if needs, _ := m.NeedsRehash(stored); needs {
//	        fresh, _ := m.Make(password)
//	        persist(userID, fresh)
//	    }
//	}
//
// # Salts
//
// [SHA512Hasher.Make] reads a fresh salt from the configured
// [SHA512Options.SaltSource].  Hosts that manage salts themselves call
// [SHA512Hasher.MakeWithSalt] and remain responsible for uniqueness.
package hashing
