// zeroize.go - best-effort wiping of secret buffers.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zeroize overwrites b with zeroes in place. Like any pure-Go wipe, it is
// best-effort: the garbage collector may have already copied the backing
// array, and the compiler is free to elide the writes if it can prove b is
// never read again. It is still worth doing for the common case where a
// secret buffer's backing array is reused or inspected after the holder
// believes it has been discarded.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroizeCoeffs overwrites a polynomial's coefficients in place.
func zeroizeCoeffs(c *[n]uint16) {
	for i := range c {
		c[i] = 0
	}
}

// zeroizePoly overwrites a standard-domain polynomial's coefficients in
// place.
func zeroizePoly(p *Poly) {
	zeroizeCoeffs(&p.coeffs)
}

// zeroizePolyVec overwrites every element of a standard-domain polynomial
// vector in place, for short-lived secret vectors such as K-PKE.KeyGen's
// s/e or K-PKE.Encrypt's r/e1 that are never stored once their NTT-domain
// or ciphertext-derived results have been computed.
func zeroizePolyVec(v PolyVec) {
	for i := range v {
		zeroizeCoeffs(&v[i].coeffs)
	}
}

// zeroizeNTTPolyVec overwrites every element of an NTT-domain polynomial
// vector in place.
func zeroizeNTTPolyVec(v NTTPolyVec) {
	for i := range v {
		zeroizeCoeffs(&v[i].coeffs)
	}
}

// Zeroize overwrites the decapsulation key's secret material (the K-PKE
// secret vector, its packed encoding, and the implicit-rejection seed z)
// in place. The embedded public key and parameter set are left intact
// since they are not secret.
func (sk *PrivateKey) Zeroize() {
	for i := range sk.sk.sHat {
		zeroizeCoeffs(&sk.sk.sHat[i].coeffs)
	}
	zeroize(sk.sk.packed)
	zeroize(sk.z)
}
