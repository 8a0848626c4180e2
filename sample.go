// sample.go - uniform and centered-binomial samplers (FIPS 203 §4.2.2-3).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// loadLittleEndian loads the first bytes of x into a little-endian uint64.
func loadLittleEndian(x []byte, bytes int) uint64 {
	var r uint64
	for i, v := range x[:bytes] {
		r |= uint64(v) << (8 * uint(i))
	}
	return r
}

// sampleNTT implements FIPS 203 Algorithm 7 (SampleNTT): it expands an XOF
// absorbed with rho||i||j into an NTT-domain polynomial via rejection
// sampling, extracting two 12-bit candidates out of every 3 squeezed
// bytes and discarding candidates >= q.
func sampleNTT(rho []byte, i, j byte) NTTPoly {
	const blockBytes = 168 * 3 // squeeze a few SHAKE-128 blocks at a time

	x := newXOF(rho, i, j)
	buf := x.squeeze(blockBytes)

	var f [n]uint16
	ctr, pos := 0, 0
	for ctr < n {
		if pos+3 > len(buf) {
			buf = x.squeeze(168)
			pos = 0
		}

		b0, b1, b2 := uint16(buf[pos]), uint16(buf[pos+1]), uint16(buf[pos+2])
		pos += 3

		d1 := b0 + 256*(b1%16)
		d2 := b1/16 + 16*b2

		if d1 < q {
			f[ctr] = d1
			ctr++
		}
		if d2 < q && ctr < n {
			f[ctr] = d2
			ctr++
		}
	}
	return NTTPoly{coeffs: f}
}

// samplePolyCBD implements FIPS 203 Algorithm 8 (SamplePolyCBD_eta): given
// 64*eta bytes of PRF_eta output, it produces a standard-domain polynomial
// whose coefficients follow the centered binomial distribution with
// parameter eta (eta in {2,3} for every ML-KEM parameter set).
func samplePolyCBD(eta int, buf []byte) Poly {
	var p Poly
	switch eta {
	case 2:
		for i := 0; i < n/8; i++ {
			t := uint32(loadLittleEndian(buf[4*i:], 4))
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555
			for j := 0; j < 8; j++ {
				a := (d >> uint(4*j+0)) & 0x3
				b := (d >> uint(4*j+2)) & 0x3
				p.coeffs[8*i+j] = subMod(uint16(a), uint16(b))
			}
		}
	case 3:
		for i := 0; i < n/4; i++ {
			t := uint32(loadLittleEndian(buf[3*i:], 3))
			d := t & 0x00249249
			d += (t >> 1) & 0x00249249
			d += (t >> 2) & 0x00249249
			for j := 0; j < 4; j++ {
				a := (d >> uint(6*j+0)) & 0x7
				b := (d >> uint(6*j+3)) & 0x7
				p.coeffs[4*i+j] = subMod(uint16(a), uint16(b))
			}
		}
	default:
		panic("mlkem: eta must be 2 or 3")
	}
	return p
}
