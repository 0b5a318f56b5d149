// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM.
//
// The scale factor is 32768 in both directions so that
// Int16ToFloat32(Float32ToInt16(x)) round-trips every int16 value exactly.
// Positive full scale clamps to 32767.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := int32(x * 32768.0)
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	return int16(v)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
