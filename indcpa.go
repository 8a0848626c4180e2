// indcpa.go - K-PKE, the IND-CPA-secure public key encryption scheme
// underlying ML-KEM (FIPS 203 Algorithms 13-15).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"io"
)

// indcpaPublicKey is ek_PKE: a compressed-free (ByteEncode_12) k-vector
// t_hat left in the NTT domain, plus the 32-byte seed rho used to expand
// the public matrix A. The hash of the packed form is cached since every
// ML-KEM operation that touches the public key also needs H(ek_PKE).
type indcpaPublicKey struct {
	tHat NTTPolyVec
	rho  [SymSize]byte

	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) bytes() []byte {
	return pk.packed
}

func (p *ParameterSet) indcpaPublicKeyFromBytes(b []byte) (*indcpaPublicKey, error) {
	if len(b) != p.indcpaPublicKeySize {
		return nil, ErrInvalidKeySize
	}

	tHatBytes := b[:p.polyVecSize]
	tHat := nttPolyVecByteDecode(p.k, tHatBytes)

	// FIPS 203's modulus check (Algorithm 16 input validation): reject a
	// t_hat whose ByteDecode_12 input was not itself the canonical
	// ByteEncode_12 of a value in [0, q), rather than silently reducing
	// it mod q.
	if !bytes.Equal(tHat.ByteEncode(), tHatBytes) {
		return nil, ErrInvalidCoefficient
	}

	pk := &indcpaPublicKey{
		tHat:   tHat,
		packed: append([]byte(nil), b...),
	}
	copy(pk.rho[:], b[p.polyVecSize:])
	pk.h = h(pk.packed)

	return pk, nil
}

// indcpaSecretKey is dk_PKE: a ByteEncode_12-packed k-vector s_hat left in
// the NTT domain.
type indcpaSecretKey struct {
	sHat   NTTPolyVec
	packed []byte
}

func (p *ParameterSet) indcpaSecretKeyFromBytes(b []byte) (*indcpaSecretKey, error) {
	if len(b) != p.indcpaSecretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := &indcpaSecretKey{
		packed: append([]byte(nil), b...),
	}
	sk.sHat = nttPolyVecByteDecode(p.k, b)

	return sk, nil
}

// sampleMatrix expands rho into a k-by-k matrix of NTT-domain polynomials
// via SampleNTT. When transposed is true, element (row,col) is expanded
// the way the untransposed matrix expands element (col,row); K-PKE.KeyGen
// uses the untransposed form to build t_hat = A.s_hat+e_hat, and
// K-PKE.Encrypt uses the transposed form to build u = InvNTT(A^T.r_hat)+e1,
// following FIPS 203 Algorithms 13-14.
func sampleMatrix(k int, rho []byte, transposed bool) Matrix {
	a := make(Matrix, k)
	for row := 0; row < k; row++ {
		a[row] = make(NTTPolyVec, k)
		for col := 0; col < k; col++ {
			if transposed {
				a[row][col] = sampleNTT(rho, byte(row), byte(col))
			} else {
				a[row][col] = sampleNTT(rho, byte(col), byte(row))
			}
		}
	}
	return a
}

// sampleNoiseVec samples a k-vector from the centered binomial
// distribution with parameter eta, consuming one PRF_eta(sigma,nonce) call
// per element and advancing nonce by k.
func sampleNoiseVec(k, eta int, sigma []byte, nonce *byte) PolyVec {
	v := make(PolyVec, k)
	for i := 0; i < k; i++ {
		v[i] = samplePolyCBD(eta, prf(eta, sigma, *nonce))
		*nonce++
	}
	return v
}

// indcpaKeyGen implements FIPS 203 Algorithm 13 (K-PKE.KeyGen), generating
// ek_PKE and dk_PKE from a 32-byte seed d. The seed is hashed with
// G(d||[k]) (domain-separated by the parameter-set rank) rather than a
// bare G(d), per the Open Question resolution recorded in DESIGN.md.
func (p *ParameterSet) indcpaKeyGen(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	var d [SymSize]byte
	defer zeroize(d[:])
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}

	rho, sigma := g(d[:], []byte{byte(p.k)})
	defer zeroize(sigma[:])

	a := sampleMatrix(p.k, rho[:], false)

	var nonce byte
	s := sampleNoiseVec(p.k, p.eta1, sigma[:], &nonce)
	defer zeroizePolyVec(s)
	e := sampleNoiseVec(p.k, p.eta1, sigma[:], &nonce)
	defer zeroizePolyVec(e)

	sHat := s.NTT()
	eHat := e.NTT()
	defer zeroizeNTTPolyVec(eHat)

	tHat := a.MulVec(sHat).Add(eHat)

	sk := &indcpaSecretKey{
		sHat:   sHat,
		packed: sHat.ByteEncode(),
	}

	pk := &indcpaPublicKey{
		tHat: tHat,
		rho:  rho,
	}
	pk.packed = append(append([]byte{}, tHat.ByteEncode()...), rho[:]...)
	pk.h = h(pk.packed)

	return pk, sk, nil
}

// indcpaEncrypt implements FIPS 203 Algorithm 14 (K-PKE.Encrypt), producing
// a ciphertext for the 32-byte message m under randomness coins.
func (p *ParameterSet) indcpaEncrypt(pk *indcpaPublicKey, m *[SymSize]byte, coins []byte) []byte {
	at := sampleMatrix(p.k, pk.rho[:], true)

	var nonce byte
	r := sampleNoiseVec(p.k, p.eta1, coins, &nonce)
	defer zeroizePolyVec(r)
	e1 := sampleNoiseVec(p.k, p.eta2, coins, &nonce)
	defer zeroizePolyVec(e1)
	e2Bytes := prf(p.eta2, coins, nonce)
	defer zeroize(e2Bytes)
	e2 := samplePolyCBD(p.eta2, e2Bytes)
	defer zeroizePoly(&e2)

	rHat := r.NTT()
	defer zeroizeNTTPolyVec(rHat)

	u := at.MulVec(rHat).InvNTT().Add(e1)

	vHatPoly := pk.tHat.DotHat(rHat)
	vPoly := vHatPoly.InvNTT()
	muPoly := Poly{coeffs: polyFromMsg(m)}
	vSum := vPoly.Add(&e2)
	v := vSum.Add(&muPoly)

	c := u.Compress(p.du)
	c = append(c, v.Compress(p.dv)...)
	return c
}

// indcpaDecrypt implements FIPS 203 Algorithm 15 (K-PKE.Decrypt).
func (p *ParameterSet) indcpaDecrypt(sk *indcpaSecretKey, c []byte) [SymSize]byte {
	u := polyVecDecompress(p.k, p.du, c[:p.uCompressedSize])
	v := polyDecompress(p.dv, c[p.uCompressedSize:])

	uHat := u.NTT()
	mHatPoly := sk.sHat.DotHat(uHat)
	mPoly := mHatPoly.InvNTT()

	w := v.Sub(&mPoly)
	return polyToMsg(&w.coeffs)
}
