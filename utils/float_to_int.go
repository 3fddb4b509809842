// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp limits x to [-1, 1]. NaN maps to 0.
func Clamp(x float64) float64 {
	switch {
	case x != x:
		return 0
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}

// Float32ToInt16 scales x to 16-bit PCM, clamping to full scale.
func Float32ToInt16(x float32) int16 {
	return int16(Clamp(float64(x)) * 32767)
}

// FloatToPCM scales x to a signed integer sample of bitDepth bits. Positive
// full scale is 2^(bitDepth-1)-1 so the result never overflows.
func FloatToPCM(x float64, bitDepth int) int {
	return int(Clamp(x) * fullScale(bitDepth))
}

// PCMToFloat maps a signed integer sample of bitDepth bits back to [-1, 1].
// 8-bit samples are unsigned and centred on 128.
func PCMToFloat(v, bitDepth int) float32 {
	if bitDepth == 8 {
		return float32(v-128) / 128
	}
	return float32(float64(v) / (fullScale(bitDepth) + 1))
}

func fullScale(bitDepth int) float64 {
	return float64(int64(1)<<(bitDepth-1) - 1)
}
