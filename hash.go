// hash.go - Hash primitives facade.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"golang.org/x/crypto/sha3"
)

// h is FIPS 203's H: SHA3-256, used to hash the encapsulation key into the
// decapsulation key and into the G() input during encapsulation.
func h(data ...[]byte) [32]byte {
	d := sha3.New256()
	for _, b := range data {
		_, _ = d.Write(b)
	}
	var out [32]byte
	d.Sum(out[:0])
	return out
}

// j is FIPS 203's J: SHAKE-256 with a 32-byte output, used to derive the
// implicit-rejection shared secret from z and the ciphertext.
func j(data ...[]byte) [32]byte {
	d := sha3.NewShake256()
	for _, b := range data {
		_, _ = d.Write(b)
	}
	var out [32]byte
	_, _ = d.Read(out[:])
	return out
}

// g is FIPS 203's G: SHA3-512, whose 64-byte output is split into two
// 32-byte halves (rho then sigma in K-PKE.KeyGen, K then r in
// encapsulation and decapsulation).
func g(data ...[]byte) (a, b [32]byte) {
	d := sha3.New512()
	for _, bb := range data {
		_, _ = d.Write(bb)
	}
	var out [64]byte
	d.Sum(out[:0])
	copy(a[:], out[:32])
	copy(b[:], out[32:])
	return a, b
}

// prf is FIPS 203's PRF_eta: SHAKE-256(s||b, 64*eta), used to sample the
// centered binomial noise polynomials.
func prf(eta int, s []byte, b byte) []byte {
	d := sha3.NewShake256()
	_, _ = d.Write(s)
	_, _ = d.Write([]byte{b})
	out := make([]byte, 64*eta)
	_, _ = d.Read(out)
	return out
}

// xof wraps an incremental SHAKE-128 instance, absorbed once at
// construction and squeezed (read) arbitrarily many times afterwards, per
// FIPS 203's XOF interface used by SampleNTT.
type xof struct {
	d sha3.ShakeHash
}

// newXOF returns an XOF absorbed with rho||b1||b2, ready to be squeezed.
func newXOF(rho []byte, b1, b2 byte) *xof {
	d := sha3.NewShake128()
	_, _ = d.Write(rho)
	_, _ = d.Write([]byte{b1, b2})
	return &xof{d: d}
}

// squeeze reads the next n bytes of output from the XOF.
func (x *xof) squeeze(n int) []byte {
	out := make([]byte, n)
	_, _ = x.d.Read(out)
	return out
}
