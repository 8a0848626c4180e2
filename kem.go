// kem.go - ML-KEM key encapsulation mechanism (FIPS 203 Algorithms 16-18).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "io"

// PublicKey is an ML-KEM encapsulation key (ek).
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.bytes()
}

// PublicKeyFromBytes deserializes a byte-serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	ipk, err := p.indcpaPublicKeyFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{pk: ipk, p: p}, nil
}

// PrivateKey is an ML-KEM decapsulation key (dk), which carries its own
// encapsulation key (ek_PKE) and the cached H(ek_PKE) needed by Decapsulate.
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey: dk_PKE || ek_PKE ||
// H(ek_PKE) || z.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte-serialized PrivateKey, verifying
// the embedded H(ek_PKE) against the embedded ek_PKE.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.PublicKey.p = p

	off := p.indcpaSecretKeySize
	ipk, err := p.indcpaPublicKeyFromBytes(b[off : off+p.publicKeySize])
	if err != nil {
		return nil, err
	}
	sk.PublicKey.pk = ipk
	off += p.publicKeySize

	if ctEqual(ipk.h[:], b[off:off+SymSize]) != 1 {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize

	sk.z = append([]byte(nil), b[off:]...)

	isk, err := p.indcpaSecretKeyFromBytes(b[:p.indcpaSecretKeySize])
	if err != nil {
		return nil, err
	}
	sk.sk = isk

	return sk, nil
}

// GenerateKeyPair generates an encapsulation/decapsulation key pair for the
// given ParameterSet, following FIPS 203 Algorithm 16 (ML-KEM.KeyGen).
// rng must be a cryptographically secure source of randomness, such as
// crypto/rand.Reader.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	ipk, isk, err := p.indcpaKeyGen(rng)
	if err != nil {
		return nil, nil, err
	}

	z := make([]byte, SymSize)
	if _, err := io.ReadFull(rng, z); err != nil {
		return nil, nil, err
	}

	kp := &PrivateKey{
		PublicKey: PublicKey{pk: ipk, p: p},
		sk:        isk,
		z:         z,
	}
	return &kp.PublicKey, kp, nil
}

// Encapsulate generates a fresh shared secret and the ciphertext that
// carries it to the holder of the corresponding PrivateKey, following FIPS
// 203 Algorithm 17 (ML-KEM.Encaps). rng must be a cryptographically secure
// source of randomness.
func (pk *PublicKey) Encapsulate(rng io.Reader) ([]byte, []byte, error) {
	var m [SymSize]byte
	defer zeroize(m[:])
	if _, err := io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}
	ct, ss := pk.encapsulateWithMessage(&m)
	return ct, ss, nil
}

// EncapsulateDeterministic generates the ciphertext and shared secret that
// ML-KEM.Encaps would produce for the given 32-byte message m, bypassing
// internal randomness generation. It exists for test and known-answer
// purposes; production callers should use Encapsulate.
func (pk *PublicKey) EncapsulateDeterministic(m *[SymSize]byte) (cipherText, sharedSecret []byte) {
	return pk.encapsulateWithMessage(m)
}

func (pk *PublicKey) encapsulateWithMessage(m *[SymSize]byte) (cipherText, sharedSecret []byte) {
	kShared, r := g(m[:], pk.pk.h[:])
	defer zeroize(r[:])

	cipherText = pk.p.indcpaEncrypt(pk.pk, m, r[:])
	sharedSecret = append([]byte(nil), kShared[:]...)
	return cipherText, sharedSecret
}

// Decapsulate recovers the shared secret carried by cipherText, following
// FIPS 203 Algorithm 18 (ML-KEM.Decaps). If cipherText does not decode to
// a value consistent with sk (a tampered or adversarially-chosen
// ciphertext), Decapsulate returns a pseudorandom value derived from sk's
// implicit-rejection seed instead of an error: per the FO transform with
// implicit rejection, decapsulation never fails visibly, and the
// resulting shared secret silently diverges from what any real peer
// would compute. The comparison driving this choice is branch-free (see
// ctEqual) so no timing side channel reveals which case occurred.
func (sk *PrivateKey) Decapsulate(cipherText []byte) ([]byte, error) {
	p := sk.PublicKey.p
	if len(cipherText) != p.CipherTextSize() {
		return nil, ErrInvalidCipherTextSize
	}

	mPrime := p.indcpaDecrypt(sk.sk, cipherText)
	defer zeroize(mPrime[:])

	kPrime, r := g(mPrime[:], sk.PublicKey.pk.h[:])
	defer zeroize(r[:])
	defer zeroize(kPrime[:])
	kBar := j(sk.z, cipherText)
	defer zeroize(kBar[:])

	cPrime := p.indcpaEncrypt(sk.PublicKey.pk, &mPrime, r[:])

	equal := ctEqual(cipherText, cPrime)
	sharedSecret := make([]byte, SymSize)
	selectBytes(sharedSecret, equal, kPrime[:], kBar[:])

	return sharedSecret, nil
}

// selectBytes sets out[i] = onMatch[i] if equal==1, out[i] = onMismatch[i]
// if equal==0, without branching on equal's value.
func selectBytes(out []byte, equal int, onMatch, onMismatch []byte) {
	mask := byte(equal) * 0xff
	for i := range out {
		out[i] = (onMatch[i] & mask) | (onMismatch[i] &^ mask)
	}
}
