// poly.go - ML-KEM ring elements.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// Poly is an element of R_q = Z_q[X]/(X^n+1) in the standard (coefficient)
// basis: coeffs[0] + X*coeffs[1] + ... + X^(n-1)*coeffs[n-1], with every
// coefficient canonical in [0, q).
type Poly struct {
	coeffs [n]uint16
}

// NTTPoly is an element of R_q in the NTT (evaluation-pair) basis produced
// by Poly.NTT. It is a distinct type so that a standard-basis and an
// NTT-basis polynomial cannot be added or multiplied by mistake; the only
// way to cross from one to the other is through NTT/InvNTT.
type NTTPoly struct {
	coeffs [n]uint16
}

// NTT transforms p into the NTT domain.
func (p *Poly) NTT() NTTPoly {
	c := p.coeffs
	hardwareAccel.ntt(&c)
	return NTTPoly{coeffs: c}
}

// InvNTT transforms p back into the standard domain.
func (p *NTTPoly) InvNTT() Poly {
	c := p.coeffs
	hardwareAccel.invNTT(&c)
	return Poly{coeffs: c}
}

// Add returns a+b in the standard domain.
func (a *Poly) Add(b *Poly) (out Poly) {
	for i := range out.coeffs {
		out.coeffs[i] = addMod(a.coeffs[i], b.coeffs[i])
	}
	return out
}

// Sub returns a-b in the standard domain.
func (a *Poly) Sub(b *Poly) (out Poly) {
	for i := range out.coeffs {
		out.coeffs[i] = subMod(a.coeffs[i], b.coeffs[i])
	}
	return out
}

// Add returns a+b in the NTT domain.
func (a *NTTPoly) Add(b *NTTPoly) (out NTTPoly) {
	for i := range out.coeffs {
		out.coeffs[i] = addMod(a.coeffs[i], b.coeffs[i])
	}
	return out
}

// MultiplyNTTs returns the NTT-domain product of a and b (the NTT-domain
// representation of their standard-domain ring product).
func (a *NTTPoly) MultiplyNTTs(b *NTTPoly) NTTPoly {
	return NTTPoly{coeffs: multiplyNTTs(&a.coeffs, &b.coeffs)}
}

// ByteEncode serializes p with ByteEncode_d. Key components are not encoded
// through it: they stay in the NTT domain and use NTTPoly.ByteEncode.
func (p *Poly) ByteEncode(d int) []byte {
	return byteEncode(d, &p.coeffs)
}

// ByteEncode serializes an NTT-domain polynomial with ByteEncode_12, the
// only encoding FIPS 203 ever applies to a value left in the NTT domain
// (t_hat and s_hat).
func (p *NTTPoly) ByteEncode() []byte {
	return byteEncode(12, &p.coeffs)
}

// polyByteDecode deserializes a standard-domain polynomial with
// ByteDecode_d.
func polyByteDecode(d int, b []byte) Poly {
	return Poly{coeffs: byteDecode(d, b)}
}

// nttPolyByteDecode deserializes an NTT-domain polynomial with
// ByteDecode_12.
func nttPolyByteDecode(b []byte) NTTPoly {
	return NTTPoly{coeffs: byteDecode(12, b)}
}

// Compress lossily compresses p to d bits per coefficient.
func (p *Poly) Compress(d int) []byte {
	c := compress(d, &p.coeffs)
	return byteEncode(d, &c)
}

// polyDecompress decompresses a byte string holding d-bit coefficients
// back into a standard-domain polynomial.
func polyDecompress(d int, b []byte) Poly {
	y := byteDecode(d, b)
	return Poly{coeffs: decompress(d, &y)}
}
