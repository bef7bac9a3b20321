package aria

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Block is a 128-bit value held as four 32-bit words, word 0 being the most
// significant. Keys and round keys share the same representation.
type Block [4]uint32

// BlockFromBytes loads a 16-byte big-endian slice into a Block.
func BlockFromBytes(b []byte) (Block, error) {
	if len(b) != BlockSize {
		return Block{}, fmt.Errorf("%w: got %d bytes", ErrInvalidBlockSize, len(b))
	}
	return loadBlock(b), nil
}

// Bytes returns the 16-byte big-endian encoding of the block.
func (x Block) Bytes() []byte {
	b := make([]byte, BlockSize)
	storeBlock(b, x)
	return b
}

// String returns the block as 32 lower-case hex digits.
func (x Block) String() string {
	var b [BlockSize]byte
	storeBlock(b[:], x)
	return hex.EncodeToString(b[:])
}

func loadBlock(b []byte) Block {
	_ = b[15] // bounds check hint
	return Block{
		binary.BigEndian.Uint32(b[0:]),
		binary.BigEndian.Uint32(b[4:]),
		binary.BigEndian.Uint32(b[8:]),
		binary.BigEndian.Uint32(b[12:]),
	}
}

func storeBlock(b []byte, x Block) {
	_ = b[15]
	binary.BigEndian.PutUint32(b[0:], x[0])
	binary.BigEndian.PutUint32(b[4:], x[1])
	binary.BigEndian.PutUint32(b[8:], x[2])
	binary.BigEndian.PutUint32(b[12:], x[3])
}

func xor128(a, b Block) Block {
	return Block{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// rotl128 rotates x left by n bits as one 128-bit big-endian string.
// n is taken modulo 128. The rotation splits into a whole-word shift q and an
// intra-word shift r; the bits leaving word i+q are carried in from word
// i+q+1. For r == 0 the carry term shifts by 32, which Go defines as zero.
func rotl128(x Block, n uint) Block {
	n &= 127
	q, r := n>>5, n&31
	var y Block
	for i := uint(0); i < 4; i++ {
		hi := x[(i+q)&3]
		lo := x[(i+q+1)&3]
		y[i] = hi<<r | lo>>(32-r)
	}
	return y
}

// rotr128 rotates x right by n bits, n taken modulo 128.
func rotr128(x Block, n uint) Block {
	return rotl128(x, 128-(n&127))
}

// byteAt extracts byte i (0 = most significant) of x.
func byteAt(x Block, i int) byte {
	return byte(x[i>>2] >> (24 - 8*uint(i&3)) & 0xff)
}

// wordOf packs four bytes, most significant first, into a 32-bit word.
func wordOf(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}
