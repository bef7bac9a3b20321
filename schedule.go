package aria

import "fmt"

// Key-schedule constants C1, C2, C3. For 128-bit keys CK1..CK3 are C1..C3
// in order.
var (
	ck1 = Block{0x517cc1b7, 0x27220a94, 0xfe13abe8, 0xfa9a6ee0}
	ck2 = Block{0x6db14acc, 0x9e21c820, 0xff28b1d5, 0xef5de2b0}
	ck3 = Block{0xdb92371d, 0x2126e970, 0x03249775, 0x04e8c90e}

	// kr is the right 128 bits of the key; always zero for ARIA-128.
	kr = Block{}
)

// RoundKeys is an ordered vector of round keys, consumed one per round.
type RoundKeys [Rounds + 1]Block

// Schedule holds the encryption and decryption round keys derived from one
// master key. It is never modified after NewSchedule returns, so a single
// Schedule may be shared between goroutines.
type Schedule struct {
	enc RoundKeys
	dec RoundKeys
}

// NewSchedule derives the round keys for a 16-byte master key.
func NewSchedule(key []byte) (*Schedule, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}
	s := new(Schedule)
	s.expand(loadBlock(key))
	return s, nil
}

// EncryptionKeys returns a copy of ek1..ek13.
func (s *Schedule) EncryptionKeys() RoundKeys { return s.enc }

// DecryptionKeys returns a copy of dk1..dk13.
func (s *Schedule) DecryptionKeys() RoundKeys { return s.dec }

func (s *Schedule) expand(k Block) {
	w := initWords(k)
	s.enc = encryptionKeys(w)
	s.dec = decryptionKeys(&s.enc)
}

// initWords runs the three-round initialisation network.
func initWords(k Block) [4]Block {
	var w [4]Block
	w[0] = k
	w[1] = xor128(fo(w[0], ck1), kr)
	w[2] = xor128(fe(w[1], ck2), w[0])
	w[3] = xor128(fo(w[2], ck3), w[1])
	return w
}

func encryptionKeys(w [4]Block) RoundKeys {
	w0, w1, w2, w3 := w[0], w[1], w[2], w[3]
	return RoundKeys{
		xor128(w0, rotr128(w1, 19)),
		xor128(w1, rotr128(w2, 19)),
		xor128(w2, rotr128(w3, 19)),
		xor128(rotr128(w0, 19), w3),
		xor128(w0, rotr128(w1, 31)),
		xor128(w1, rotr128(w2, 31)),
		xor128(w2, rotr128(w3, 31)),
		xor128(rotr128(w0, 31), w3),
		xor128(w0, rotl128(w1, 61)),
		xor128(w1, rotl128(w2, 61)),
		xor128(w2, rotl128(w3, 61)),
		xor128(rotl128(w0, 61), w3),
		xor128(w0, rotl128(w1, 31)),
	}
}

// decryptionKeys reverses the encryption vector and passes the inner keys
// through A, so that decryption reuses the encryption round structure.
func decryptionKeys(ek *RoundKeys) RoundKeys {
	var dk RoundKeys
	dk[0] = ek[Rounds]
	for i := 1; i < Rounds; i++ {
		dk[i] = diffuse(ek[Rounds-i])
	}
	dk[Rounds] = ek[0]
	return dk
}
