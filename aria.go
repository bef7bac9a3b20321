// Package aria provides the ARIA-128 block cipher.
// Based on: RFC 5794, "A Description of the ARIA Encryption Algorithm"
// https://datatracker.ietf.org/doc/html/rfc5794
package aria

import (
	"crypto/cipher"
	"fmt"
)

// Cipher is an ARIA-128 instance bound to one key. It implements
// cipher.Block.
type Cipher struct {
	sched *Schedule
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher creates a new ARIA cipher for a 16-byte key.
// Keys of any other length are rejected with ErrInvalidKeySize.
func NewCipher(key []byte) (*Cipher, error) {
	s, err := NewSchedule(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{sched: s}, nil
}

// NewCipherWithSchedule wraps an already derived schedule, typically one
// obtained from a ScheduleCache.
func NewCipherWithSchedule(s *Schedule) (*Cipher, error) {
	if s == nil {
		return nil, ErrNilCipher
	}
	return &Cipher{sched: s}, nil
}

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Schedule returns the round keys in use.
func (c *Cipher) Schedule() *Schedule { return c.sched }

// Encrypt encrypts the first block in src into dst.
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.check(dst, src)
	storeBlock(dst, crypt(loadBlock(src), &c.sched.enc))
}

// Decrypt decrypts the first block in src into dst.
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	c.check(dst, src)
	storeBlock(dst, crypt(loadBlock(src), &c.sched.dec))
}

func (c *Cipher) check(dst, src []byte) {
	if c == nil || c.sched == nil {
		panic(ErrNilCipher.Error())
	}
	if len(src) < BlockSize {
		panic("aria: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aria: output not full block")
	}
}

// crypt runs the eleven alternating rounds and the final substitution. The
// same structure serves both directions; only the key vector differs.
func crypt(p Block, rk *RoundKeys) Block {
	x := p
	for i := 0; i < Rounds-1; i++ {
		if i&1 == 0 {
			x = fo(x, rk[i])
		} else {
			x = fe(x, rk[i])
		}
	}
	return xor128(sl2(xor128(x, rk[Rounds-1])), rk[Rounds])
}

// EncryptBlock encrypts one block under key k. The schedule is derived on
// every call; use a Cipher or a ScheduleCache when encrypting many blocks
// under the same key.
func EncryptBlock(p, k Block) Block {
	var s Schedule
	s.expand(k)
	return crypt(p, &s.enc)
}

// DecryptBlock decrypts one block under key k.
func DecryptBlock(c, k Block) Block {
	var s Schedule
	s.expand(k)
	return crypt(c, &s.dec)
}

// Encrypt encrypts the 16-byte src into dst under a 16-byte key, using
// DefaultCache to avoid re-deriving the schedule for a key seen before.
func Encrypt(dst, src, key []byte) error {
	s, err := prepare(dst, src, key)
	if err != nil {
		return err
	}
	storeBlock(dst, crypt(loadBlock(src), &s.enc))
	return nil
}

// Decrypt decrypts the 16-byte src into dst under a 16-byte key.
func Decrypt(dst, src, key []byte) error {
	s, err := prepare(dst, src, key)
	if err != nil {
		return err
	}
	storeBlock(dst, crypt(loadBlock(src), &s.dec))
	return nil
}

func prepare(dst, src, key []byte) (*Schedule, error) {
	if len(src) != BlockSize {
		return nil, fmt.Errorf("%w: input is %d bytes", ErrInvalidBlockSize, len(src))
	}
	if len(dst) != BlockSize {
		return nil, fmt.Errorf("%w: output is %d bytes", ErrInvalidBlockSize, len(dst))
	}
	return DefaultCache.Get(key)
}
