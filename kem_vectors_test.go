// kem_vectors_test.go - deterministic known-answer-style tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// deterministicRNG is a stream cipher-free, seed-expanding io.Reader used
// to drive repeatable test runs. It has no cryptographic properties
// whatsoever and must never be used outside of tests: it exists so the
// same "randomness" can be replayed across two GenerateKeyPair/Encapsulate
// calls and checked for the exact byte-for-byte agreement ML-KEM's
// specification requires of a deterministic implementation.
type deterministicRNG struct {
	state [32]byte
}

func newDeterministicRNG(seed byte) *deterministicRNG {
	r := &deterministicRNG{}
	r.state[0] = seed
	return r
}

func (r *deterministicRNG) Read(p []byte) (int, error) {
	for i := range p {
		r.state[0]++
		h := j(r.state[:])
		copy(r.state[:], h[:])
		p[i] = h[0]
	}
	return len(p), nil
}

// TestKEMDeterministicReplay confirms that replaying the same seeded
// randomness source through GenerateKeyPair and Encapsulate twice yields
// byte-identical keys, ciphertexts, and shared secrets, for every
// parameter set. This is the property a real known-answer-test harness
// (fed by the NIST ACVP vectors, not checked into this repository) would
// ultimately exercise against fixed inputs instead of a replayed stream.
func TestKEMDeterministicReplay(t *testing.T) {
	require := require.New(t)

	for _, p := range allParams {
		rng1 := newDeterministicRNG(0x42)
		pk1, sk1, err := p.GenerateKeyPair(rng1)
		require.NoError(err, "%s: GenerateKeyPair() (run 1)", p.Name())
		ct1, ss1, err := pk1.Encapsulate(rng1)
		require.NoError(err, "%s: Encapsulate() (run 1)", p.Name())

		rng2 := newDeterministicRNG(0x42)
		pk2, sk2, err := p.GenerateKeyPair(rng2)
		require.NoError(err, "%s: GenerateKeyPair() (run 2)", p.Name())
		ct2, ss2, err := pk2.Encapsulate(rng2)
		require.NoError(err, "%s: Encapsulate() (run 2)", p.Name())

		require.Equal(pk1.Bytes(), pk2.Bytes(), "%s: public key replay", p.Name())
		require.Equal(sk1.Bytes(), sk2.Bytes(), "%s: private key replay", p.Name())
		require.Equal(ct1, ct2, "%s: ciphertext replay", p.Name())
		require.Equal(ss1, ss2, "%s: shared secret replay", p.Name())

		ssDec, err := sk1.Decapsulate(ct1)
		require.NoError(err, "%s: Decapsulate()", p.Name())
		require.Equal(ss1, ssDec, "%s: decapsulated shared secret", p.Name())
	}
}

// TestEncapsulateDeterministicMatchesEncapsulate confirms that
// EncapsulateDeterministic, fed the same 32-byte message an equivalent
// Encapsulate call would have drawn from its randomness source, produces
// exactly the ciphertext and shared secret Encapsulate does: the two
// differ only in where m comes from.
func TestEncapsulateDeterministicMatchesEncapsulate(t *testing.T) {
	require := require.New(t)

	for _, p := range allParams {
		pk, sk, err := p.GenerateKeyPair(newDeterministicRNG(0x07))
		require.NoError(err, "%s: GenerateKeyPair()", p.Name())

		var m [SymSize]byte
		_, err = newDeterministicRNG(0x99).Read(m[:])
		require.NoError(err)

		ct, ss := pk.EncapsulateDeterministic(&m)
		require.Len(ct, p.CipherTextSize(), "%s: ciphertext length", p.Name())
		require.Len(ss, SymSize, "%s: shared secret length", p.Name())

		ss2, err := sk.Decapsulate(ct)
		require.NoError(err, "%s: Decapsulate()", p.Name())
		require.Equal(ss, ss2, "%s: shared secret must round-trip", p.Name())

		// Re-deriving with the same message must reproduce the same
		// ciphertext and shared secret (K-PKE.Encrypt is deterministic
		// in its coins, and ML-KEM.Encaps derives those coins from m).
		ct2, ss3 := pk.EncapsulateDeterministic(&m)
		require.Equal(ct, ct2, "%s: repeat EncapsulateDeterministic ciphertext", p.Name())
		require.Equal(ss, ss3, "%s: repeat EncapsulateDeterministic shared secret", p.Name())

		// Encapsulate drawing the same m from an identically seeded
		// source must produce the same ciphertext and shared secret.
		ct3, ss4, err := pk.Encapsulate(newDeterministicRNG(0x99))
		require.NoError(err, "%s: Encapsulate()", p.Name())
		require.Equal(ct, ct3, "%s: Encapsulate ciphertext", p.Name())
		require.Equal(ss, ss4, "%s: Encapsulate shared secret", p.Name())
	}
}
