package aria

import "errors"

var (
	// ErrInvalidKeySize is returned when the provided key is not exactly 16 bytes.
	ErrInvalidKeySize = errors.New("aria: unsupported key size, must be 16 bytes")

	// ErrInvalidBlockSize is returned when an input or output block is not exactly 16 bytes.
	ErrInvalidBlockSize = errors.New("aria: invalid block size, must be 16 bytes")

	// ErrNilCipher is returned when attempting to use a nil cipher instance.
	ErrNilCipher = errors.New("aria: cipher instance is nil")
)

const (
	// BlockSize is the ARIA block size in bytes.
	BlockSize = 16

	// KeySize is the only supported key size in bytes (ARIA-128).
	KeySize = 16

	// Rounds is the number of rounds for a 128-bit key. A schedule holds
	// Rounds+1 round keys.
	Rounds = 12
)
