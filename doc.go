// Package aria implements the ARIA block cipher (RFC 5794) for 128-bit keys.
//
// ARIA is a 128-bit substitution-permutation network standardised in Korea
// (KS X 1213). Each round XORs a round key into the state, applies one of two
// substitution layers built from four S-boxes, and mixes the sixteen bytes
// with an involutive binary diffusion matrix. ARIA-128 runs 12 rounds under
// 13 round keys derived from the master key through a small Feistel-like
// initialisation network.
//
// # Features
//
//   - Implements crypto/cipher.Block, so any standard mode (CBC, CTR, GCM)
//     can wrap it
//   - Explicit, immutable key schedules with no package-level mutable state
//   - Optional schedule cache keyed by raw key bytes
//   - Word-level API (Block) for callers that already hold 32-bit words
//
// # Basic Usage
//
//	key := make([]byte, 16) // ARIA-128 key
//	// Fill key with cryptographically secure random bytes
//
//	c, err := aria.NewCipher(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dst := make([]byte, aria.BlockSize)
//	c.Encrypt(dst, plaintext)
//	c.Decrypt(dst, dst)
//
// A Cipher encrypts exactly one block. Chaining, padding and authentication
// are the job of a mode of operation from crypto/cipher or elsewhere.
//
// # One-off Blocks
//
// Encrypt and Decrypt take the key with every call and look the schedule up
// in DefaultCache:
//
//	err := aria.Encrypt(dst, src, key)
//
// # Key Sizes
//
// Only 16-byte keys are supported. ARIA-192 and ARIA-256 keys are rejected
// with ErrInvalidKeySize instead of being truncated or padded.
//
// # Thread Safety
//
// A Schedule is never modified after derivation, so Cipher values and
// schedules returned by a ScheduleCache are safe for concurrent use.
//
// # Side Channels
//
// The S-box lookups are table driven and index memory with secret data. This
// package makes no constant-time claims.
package aria
