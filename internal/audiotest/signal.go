package audiotest

import "math"

// Sine returns n samples of amplitude amp at freq Hz.
func Sine(n, sampleRate int, freq, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return out
}

// Ramp returns 0, 1/n, 2/n, ... so every sample is distinct and increasing.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n)
	}
	return out
}

// Constant returns n copies of v.
func Constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// ZeroCrossings counts sign changes, a cheap frequency estimate.
func ZeroCrossings(samples []float64) int {
	count := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			count++
		}
	}
	return count
}

// Float32s narrows samples, as the audio package stores them.
func Float32s(samples []float64) []float32 {
	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = float32(v)
	}
	return out
}
