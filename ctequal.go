// ctequal.go - branch-free constant-time comparison (FIPS 203 §4.8).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "crypto/subtle"

// ctEqual returns 1 if a and b are equal-length and byte-equal, 0
// otherwise, in time independent of where the first differing byte is (or
// whether one exists at all). It never branches on secret data itself;
// Decapsulate combines its result with selectBytes rather than an if
// statement, so it never branches on the ciphertext comparison.
func ctEqual(a, b []byte) int {
	return subtle.ConstantTimeCompare(a, b)
}
