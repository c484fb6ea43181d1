// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package credential provides salted password hashing and verification.
//
// # Records
//
// A record is the only artifact a caller persists. It is self-contained: the
// salt travels with the digest, so verification needs nothing but the record
// and the candidate password. Two record schemes exist:
//   - salted-sha256: hex(salt) followed by hex(sha256(salt || password)),
//     exactly 96 lowercase hex characters
//   - argon2id: a PHC string, $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// # Hashers
//
// Every scheme implements Hasher. New returns a MigratingHasher that hashes
// with the requested scheme and verifies records of either scheme, so stored
// records can be moved to a stronger scheme on the next successful login
// (see MigratingHasher.NeedsUpgrade).
//
// Hashers hold no mutable state and are safe for concurrent use, provided the
// random source passed to WithRandom is.
package credential
