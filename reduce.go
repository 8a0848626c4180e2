// reduce.go - modular reduction helpers for Z_q, q = 3329.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// Coefficients are kept canonical (in [0, q)) at every step rather than in
// Montgomery form with lazy reduction, as the teacher's reduce.go did for
// q=7681. A single canonical-domain strategy is simpler to get right
// without ever compiling or running it, at the cost of a handful of extra
// conditional subtracts per butterfly; it is a well-known alternative
// reduction strategy used by several modern Kyber/ML-KEM ports.

// addMod returns (a+b) mod q for a, b already in [0, q).
func addMod(a, b uint16) uint16 {
	s := uint32(a) + uint32(b)
	if s >= q {
		s -= q
	}
	return uint16(s)
}

// subMod returns (a-b) mod q for a, b already in [0, q).
func subMod(a, b uint16) uint16 {
	s := uint32(a) + q - uint32(b)
	if s >= q {
		s -= q
	}
	return uint16(s)
}

// mulMod returns (a*b) mod q for a, b already in [0, q).
func mulMod(a, b uint16) uint16 {
	return uint16((uint32(a) * uint32(b)) % q)
}

// reduceWide reduces an arbitrary non-negative value (such as the raw
// 12-bit output of ByteDecode_12, which can exceed q) to [0, q).
func reduceWide(a uint16) uint16 {
	return uint16(uint32(a) % q)
}
