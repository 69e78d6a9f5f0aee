// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential primitives used by the service layer.
//
// The only abstraction is [PasswordHasher]: services never compare password
// hashes directly, they always go through Verify.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted digests and checks
// candidates against a stored digest.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext suitable for storage.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest.
	// A malformed digest is reported as a mismatch.
	Verify(plaintext, digest string) bool
}
