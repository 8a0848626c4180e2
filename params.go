// params.go - ML-KEM parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// SymSize is the size, in bytes, of the shared secret and of the
	// internal 256-bit symmetric values (seeds, hashes) FIPS 203 passes
	// between the hash primitives.
	SymSize = 32

	// n is the fixed ring dimension used by every ML-KEM parameter set.
	n = 256

	// q is the fixed modulus used by every ML-KEM parameter set.
	q = 3329

	// polyEncodedSize is the size, in bytes, of a single polynomial
	// serialized with ByteEncode_12 (FIPS 203 only ever encodes full
	// polynomials at d=12 outside of ciphertext compression).
	polyEncodedSize = 384
)

// ParameterSet is an ML-KEM parameter set as tabulated in FIPS 203 §8.
type ParameterSet struct {
	name string

	k   int // module rank
	eta1 int // CBD width used for the secret vector and the encryption blind r
	eta2 int // CBD width used for the encryption noise e1, e2
	du   int // compression depth of the ciphertext's u component
	dv   int // compression depth of the ciphertext's v component

	polyVecSize           int // size of a k-vector of polynomials, ByteEncode_12
	uCompressedSize       int // size of the compressed u component of a ciphertext
	vCompressedSize       int // size of the compressed v component of a ciphertext

	indcpaPublicKeySize int // ek_PKE size: 384k+32
	indcpaSecretKeySize int // dk_PKE size: 384k

	publicKeySize  int // ek size (== ek_PKE size)
	secretKeySize  int // dk size: dk_PKE || ek_PKE || H(ek_PKE) || z
	cipherTextSize int // 32*(du*k + dv)
}

var (
	// MLKEM512 is the ML-KEM-512 parameter set, which targets a security
	// strength category roughly comparable to AES-128.
	MLKEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4)

	// MLKEM768 is the ML-KEM-768 parameter set, which targets a security
	// strength category roughly comparable to AES-192.
	MLKEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

	// MLKEM1024 is the ML-KEM-1024 parameter set, which targets a security
	// strength category roughly comparable to AES-256.
	MLKEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5)
)

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// PublicKeySize returns the size of an encapsulation key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a decapsulation key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv

	p.polyVecSize = k * polyEncodedSize
	p.uCompressedSize = k * 32 * du
	p.vCompressedSize = 32 * dv

	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize
	p.cipherTextSize = p.uCompressedSize + p.vCompressedSize

	return &p
}
