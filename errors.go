// errors.go - sentinel errors for the ML-KEM error model (FIPS 203 §7).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "errors"

var (
	// ErrInvalidKeySize is returned when a byte-serialized encapsulation
	// or decapsulation key is the wrong length for the parameter set.
	ErrInvalidKeySize = errors.New("mlkem: invalid key size")

	// ErrInvalidCipherTextSize is returned when a byte-serialized
	// ciphertext is the wrong length for the parameter set.
	ErrInvalidCipherTextSize = errors.New("mlkem: invalid ciphertext size")

	// ErrInvalidPrivateKey is returned when a byte-serialized
	// decapsulation key fails its internal consistency check (the
	// embedded H(ek_PKE) does not match the embedded ek_PKE).
	ErrInvalidPrivateKey = errors.New("mlkem: invalid private key")

	// ErrInvalidCoefficient is returned when a byte-serialized
	// encapsulation key fails FIPS 203's modulus check: one or more of
	// its ByteDecode_12-decoded coefficients is not the canonical
	// encoding of a value in [0, q), i.e. re-encoding the decoded t_hat
	// does not reproduce the original bytes.
	ErrInvalidCoefficient = errors.New("mlkem: invalid coefficient (modulus check failed)")
)
