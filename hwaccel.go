// hwaccel.go - hardware acceleration hooks.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const implReference = "Reference"

// hwAccelImpl is the indirection point through which an accelerated NTT
// (e.g. AVX2) could be substituted for the reference implementation. No
// such backend ships in this package; the seam exists so one could be
// added without touching any caller.
type hwAccelImpl struct {
	name string

	nttFn    func(f *[n]uint16)
	invNTTFn func(f *[n]uint16)
}

func (h *hwAccelImpl) ntt(f *[n]uint16)    { h.nttFn(f) }
func (h *hwAccelImpl) invNTT(f *[n]uint16) { h.invNTTFn(f) }

var (
	isHardwareAccelerated = false
	hardwareAccel         = hwAccelImpl{name: implReference, nttFn: ntt, invNTTFn: invNTT}
)

func forceDisableHardwareAcceleration() {
	// For the benefit of testing, so every supported codepath can be
	// exercised on a single host.
	isHardwareAccelerated = false
	hardwareAccel = hwAccelImpl{name: implReference, nttFn: ntt, invNTTFn: invNTT}
}

// IsHardwareAccelerated returns true iff this build will use an
// accelerated NTT implementation rather than the portable reference one.
func IsHardwareAccelerated() bool {
	return isHardwareAccelerated
}

func init() {
	initHardwareAcceleration()
}
