// ntt.go - Number-Theoretic Transform over Z_q[X]/(X^256+1), q=3329.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zetas holds zeta^BitRev7(i) mod q for i in [0,128), where zeta=17 is the
// primitive 256th root of unity mod q=3329 fixed by FIPS 203. zetas[0] is
// never read by ntt/invNTT (ntt counts k up from 1, invNTT down from 127 to
// 1); it exists so
// gammas (below) can be derived from the same table shape.
var zetas = [128]uint16{
	1, 1729, 2580, 3289, 2642, 630, 1897, 848, 1062, 1919, 193, 797, 2786, 3260, 569, 1746,
	296, 2447, 1339, 1476, 3046, 56, 2240, 1333, 1426, 2094, 535, 2882, 2393, 2879, 1974, 821,
	289, 331, 3253, 1756, 1197, 2304, 2277, 2055, 650, 1977, 2513, 632, 2865, 33, 1320,
	1915, 2319, 1435, 807, 452, 1438, 2868, 1534, 2402, 2647, 2617, 1481, 648, 2474, 3110,
	1227, 910, 17, 2761, 583, 2649, 1637, 723, 2288, 1100, 1409, 2662, 3281, 233, 756, 2156,
	3015, 3050, 1703, 1651, 2789, 1789, 1847, 952, 1461, 2687, 939, 2308, 2437, 2388, 733,
	2337, 268, 641, 1584, 2298, 2037, 3220, 375, 2549, 2090, 1645, 1063, 319, 2773, 757,
	2099, 561, 2466, 2594, 2804, 1092, 403, 1026, 1143, 2150, 2775, 886, 1722, 1212, 1874,
	1029, 2110, 2935, 885, 2154,
}

// gammas holds zeta^(2*BitRev7(i)+1) mod q for i in [0,128), the base-case
// multiplier used by multiplyNTTs to multiply two NTT-domain polynomials
// pair by pair modulo X^2-gammas[i].
var gammas = [128]uint16{
	17, 3312, 2761, 568, 583, 2746, 2649, 680, 1637, 1692, 723, 2606, 2288, 1041, 1100, 2229,
	1409, 1920, 2662, 667, 3281, 48, 233, 3096, 756, 2573, 2156, 1173, 3015, 314, 3050, 279,
	1703, 1626, 1651, 1678, 2789, 540, 1789, 1540, 1847, 1482, 952, 2377, 1461, 1868, 2687,
	642, 939, 2390, 2308, 1021, 2437, 892, 2388, 941, 733, 2596, 2337, 992, 268, 3061, 641,
	2688, 1584, 1745, 2298, 1031, 2037, 1292, 3220, 109, 375, 2954, 2549, 780, 2090, 1239,
	1645, 1684, 1063, 2266, 319, 3010, 2773, 556, 757, 2572, 2099, 1230, 561, 2768, 2466, 863,
	2594, 735, 2804, 525, 1092, 2237, 403, 2926, 1026, 2303, 1143, 2186, 2150, 1179, 2775,
	554, 886, 2443, 1722, 1607, 1212, 2117, 1874, 1455, 1029, 2300, 2110, 1219, 2935, 394,
	885, 2444, 2154, 1175,
}

// nInv is 128^-1 mod q (one factor per degree-one NTT pair, not per
// coefficient), the scaling factor applied once at the end of invNTT.
const nInv = 3303

// ntt transforms f from the standard basis to the NTT (evaluation-pair)
// basis in place, following FIPS 203 Algorithm 9.
func ntt(f *[n]uint16) {
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := mulMod(zeta, f[j+length])
				f[j+length] = subMod(f[j], t)
				f[j] = addMod(f[j], t)
			}
		}
	}
}

// invNTT transforms f from the NTT basis back to the standard basis in
// place, following FIPS 203 Algorithm 10.
func invNTT(f *[n]uint16) {
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := f[j]
				f[j] = addMod(t, f[j+length])
				f[j+length] = mulMod(zeta, subMod(f[j+length], t))
			}
		}
	}
	for j := 0; j < n; j++ {
		f[j] = mulMod(f[j], nInv)
	}
}

// multiplyNTTs computes the coefficient-wise product of two NTT-domain
// polynomials, following FIPS 203 Algorithm 12: each adjacent pair
// (c[2i], c[2i+1]) is the product of (a[2i]+a[2i+1]X) and (b[2i]+b[2i+1]X)
// reduced modulo X^2-gammas[i].
func multiplyNTTs(a, b *[n]uint16) (c [n]uint16) {
	for i := 0; i < 128; i++ {
		a0, a1 := a[2*i], a[2*i+1]
		b0, b1 := b[2*i], b[2*i+1]

		c0 := addMod(mulMod(a0, b0), mulMod(mulMod(a1, b1), gammas[i]))
		c1 := addMod(mulMod(a0, b1), mulMod(a1, b0))

		c[2*i] = c0
		c[2*i+1] = c1
	}
	return c
}
