// polyvec.go - vectors and matrices of ML-KEM ring elements.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// PolyVec is a length-k vector of standard-domain polynomials.
type PolyVec []Poly

// NTTPolyVec is a length-k vector of NTT-domain polynomials.
type NTTPolyVec []NTTPoly

// Matrix is a k-by-k matrix of NTT-domain polynomials, used only for the
// SampleNTT-expanded public matrix A.
type Matrix []NTTPolyVec

// NTT transforms every element of v into the NTT domain.
func (v PolyVec) NTT() NTTPolyVec {
	out := make(NTTPolyVec, len(v))
	for i := range v {
		out[i] = v[i].NTT()
	}
	return out
}

// InvNTT transforms every element of v back into the standard domain.
func (v NTTPolyVec) InvNTT() PolyVec {
	out := make(PolyVec, len(v))
	for i := range v {
		out[i] = v[i].InvNTT()
	}
	return out
}

// Add returns a+b, element-wise, in the standard domain.
func (a PolyVec) Add(b PolyVec) PolyVec {
	out := make(PolyVec, len(a))
	for i := range a {
		out[i] = a[i].Add(&b[i])
	}
	return out
}

// Add returns a+b, element-wise, in the NTT domain.
func (a NTTPolyVec) Add(b NTTPolyVec) NTTPolyVec {
	out := make(NTTPolyVec, len(a))
	for i := range a {
		out[i] = a[i].Add(&b[i])
	}
	return out
}

// DotHat returns the NTT-domain inner product sum_i a[i]*b[i], following
// FIPS 203's "A_hat^T . s_hat" / "t_hat^T . r_hat" style accumulations.
func (a NTTPolyVec) DotHat(b NTTPolyVec) NTTPoly {
	acc := a[0].MultiplyNTTs(&b[0])
	for i := 1; i < len(a); i++ {
		term := a[i].MultiplyNTTs(&b[i])
		acc = acc.Add(&term)
	}
	return acc
}

// MulVec returns the NTT-domain matrix-vector product m*v, one dot product
// per matrix row.
func (m Matrix) MulVec(v NTTPolyVec) NTTPolyVec {
	out := make(NTTPolyVec, len(m))
	for i, row := range m {
		out[i] = row.DotHat(v)
	}
	return out
}

// ByteEncode serializes v (standard domain) with ByteEncode_12 per element.
func (v PolyVec) ByteEncode() []byte {
	out := make([]byte, 0, len(v)*polyEncodedSize)
	for i := range v {
		out = append(out, v[i].ByteEncode(12)...)
	}
	return out
}

// ByteEncode serializes v (NTT domain) with ByteEncode_12 per element.
func (v NTTPolyVec) ByteEncode() []byte {
	out := make([]byte, 0, len(v)*polyEncodedSize)
	for i := range v {
		out = append(out, v[i].ByteEncode()...)
	}
	return out
}

// polyVecByteDecode deserializes a k-element standard-domain vector.
func polyVecByteDecode(k int, b []byte) PolyVec {
	out := make(PolyVec, k)
	for i := 0; i < k; i++ {
		out[i] = polyByteDecode(12, b[i*polyEncodedSize:(i+1)*polyEncodedSize])
	}
	return out
}

// nttPolyVecByteDecode deserializes a k-element NTT-domain vector.
func nttPolyVecByteDecode(k int, b []byte) NTTPolyVec {
	out := make(NTTPolyVec, k)
	for i := 0; i < k; i++ {
		out[i] = nttPolyByteDecode(b[i*polyEncodedSize : (i+1)*polyEncodedSize])
	}
	return out
}

// Compress lossily compresses each element of v to d bits per coefficient
// and concatenates the results, used to build the ciphertext's u component.
func (v PolyVec) Compress(d int) []byte {
	out := make([]byte, 0, len(v)*32*d)
	for i := range v {
		out = append(out, v[i].Compress(d)...)
	}
	return out
}

// polyVecDecompress is the inverse of PolyVec.Compress.
func polyVecDecompress(k, d int, b []byte) PolyVec {
	chunk := 32 * d
	out := make(PolyVec, k)
	for i := 0; i < k; i++ {
		out[i] = polyDecompress(d, b[i*chunk:(i+1)*chunk])
	}
	return out
}
