// hwaccel_ref.go - unaccelerated stub.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

func initHardwareAcceleration() {
	forceDisableHardwareAcceleration()
}
