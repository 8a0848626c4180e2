// doc.go - mlkem godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements ML-KEM, the Module-Lattice-Based Key
// Encapsulation Mechanism standardized by NIST as FIPS 203, built from the
// CPA-secure K-PKE public key encryption scheme via the Fujisaki-Okamoto
// transform with implicit rejection.
//
// Three parameter sets are provided, ML-KEM-512, ML-KEM-768 and
// ML-KEM-1024, offering security roughly comparable to AES-128, AES-192
// and AES-256 respectively.
//
// This package implements only the KEM primitive (KeyGen, Encapsulate,
// Decapsulate) as specified by FIPS 203. It does not provide a randomness
// source, a SHA-3 implementation, key exchange/handshake protocols built on
// top of the KEM, or any form of persistence; callers are expected to
// supply an io.Reader suitable for cryptographic use (such as crypto/rand)
// and to handle serialization of the resulting byte strings themselves.
//
// For more information, see https://csrc.nist.gov/pubs/fips/203/final.
package mlkem
