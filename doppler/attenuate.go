// SPDX-License-Identifier: EPL-2.0

package doppler

// AttenuationScale returns min(d)/d_i for every distance. The ratio is linear
// in 1/d; samples at the minimum distance get exactly 1, including a zero
// minimum.
func AttenuationScale(distance []float64) []float64 {
	scale := make([]float64, len(distance))
	if len(distance) == 0 {
		return scale
	}

	nearest := distance[0]
	for _, d := range distance[1:] {
		nearest = min(nearest, d)
	}

	for i, d := range distance {
		if d == nearest {
			scale[i] = 1
			continue
		}
		scale[i] = nearest / d
	}

	return scale
}

// Attenuate returns samples multiplied element-wise by AttenuationScale(distance).
// samples is left untouched.
func Attenuate(samples, distance []float64) []float64 {
	return applyScale(samples, AttenuationScale(distance))
}

func applyScale(samples, scale []float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s * scale[i]
	}
	return out
}
