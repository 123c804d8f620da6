// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized float32 sample to 16-bit PCM.
// Input outside [-1, 1] is clamped before scaling.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 on both sides so +1.0 does not overflow int16
	return int16(x * 32767.0)
}

// Float32BufToInt16 converts src samples into dst. dst shorter than src
// truncates the conversion. Returns the number of samples converted.
func Float32BufToInt16(dst []int16, src []float32) int {
	n := min(len(src), len(dst))
	for i := 0; i < n; i++ {
		dst[i] = Float32ToInt16(src[i])
	}
	return n
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32 in [-1, 1].
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
