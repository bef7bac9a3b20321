package aria

// sl1 is the odd-round substitution layer: sb1, sb2, sb3, sb4 repeated over
// the sixteen bytes.
func sl1(x Block) Block {
	var y Block
	for i, w := range x {
		y[i] = uint32(sb1[w>>24&0xff])<<24 |
			uint32(sb2[w>>16&0xff])<<16 |
			uint32(sb3[w>>8&0xff])<<8 |
			uint32(sb4[w&0xff])
	}
	return y
}

// sl2 is the even-round substitution layer: sb3, sb4, sb1, sb2 repeated.
// It is the inverse of sl1.
func sl2(x Block) Block {
	var y Block
	for i, w := range x {
		y[i] = uint32(sb3[w>>24&0xff])<<24 |
			uint32(sb4[w>>16&0xff])<<16 |
			uint32(sb1[w>>8&0xff])<<8 |
			uint32(sb2[w&0xff])
	}
	return y
}

// diffuse is the diffusion layer A. Every output byte is the XOR of seven
// input bytes. A is an involution.
func diffuse(x Block) Block {
	x0, x1, x2, x3 := byteAt(x, 0), byteAt(x, 1), byteAt(x, 2), byteAt(x, 3)
	x4, x5, x6, x7 := byteAt(x, 4), byteAt(x, 5), byteAt(x, 6), byteAt(x, 7)
	x8, x9, x10, x11 := byteAt(x, 8), byteAt(x, 9), byteAt(x, 10), byteAt(x, 11)
	x12, x13, x14, x15 := byteAt(x, 12), byteAt(x, 13), byteAt(x, 14), byteAt(x, 15)

	return Block{
		wordOf(
			x3^x4^x6^x8^x9^x13^x14,
			x2^x5^x7^x8^x9^x12^x15,
			x1^x4^x6^x10^x11^x12^x15,
			x0^x5^x7^x10^x11^x13^x14,
		),
		wordOf(
			x0^x2^x5^x8^x11^x14^x15,
			x1^x3^x4^x9^x10^x14^x15,
			x0^x2^x7^x9^x10^x12^x13,
			x1^x3^x6^x8^x11^x12^x13,
		),
		wordOf(
			x0^x1^x4^x7^x10^x13^x15,
			x0^x1^x5^x6^x11^x12^x14,
			x2^x3^x5^x6^x8^x13^x15,
			x2^x3^x4^x7^x9^x12^x14,
		),
		wordOf(
			x1^x2^x6^x7^x9^x11^x12,
			x0^x3^x6^x7^x8^x10^x13,
			x0^x3^x4^x5^x9^x11^x14,
			x1^x2^x4^x5^x8^x10^x15,
		),
	}
}

// fo is the odd round function A(SL1(d ^ rk)).
func fo(d, rk Block) Block {
	return diffuse(sl1(xor128(d, rk)))
}

// fe is the even round function A(SL2(d ^ rk)).
func fe(d, rk Block) Block {
	return diffuse(sl2(xor128(d, rk)))
}
