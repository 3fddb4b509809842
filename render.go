// SPDX-License-Identifier: EPL-2.0

package dopplersim

import (
	"fmt"
	"slices"

	"github.com/studentenherz/Doppler-Effect-Simulator/audio"
	"github.com/studentenherz/Doppler-Effect-Simulator/doppler"
	"github.com/studentenherz/Doppler-Effect-Simulator/utils"
)

// Render drains src, mixes it to mono and runs the Doppler simulation on it.
// The result keeps the source sample rate. src is not closed.
func Render(src audio.Source, traj doppler.Trajectory, opts doppler.Options) (*doppler.Result, error) {
	samples, rate, err := audio.ReadMono64(src, 0)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	res, err := doppler.Simulate(samples, rate, traj, opts)
	if err != nil {
		return nil, fmt.Errorf("simulating: %w", err)
	}
	return res, nil
}

// Resample converts mono samples from one rate to another through the
// streaming Catmull-Rom resampler. Equal rates return a copy.
func Resample(samples []float64, from, to, bufferSize int) ([]float64, error) {
	if from <= 0 || to <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, from, to)
	}
	if from == to {
		return slices.Clone(samples), nil
	}

	r := audio.NewResampler(audio.NewMonoBufferSource(samples, from), to)
	data, err := audio.ReadAll(r, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("resampling: %w", err)
	}

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out, nil
}

// RenderToMono16 renders src and returns 16-bit PCM at targetRate along with
// that rate. targetRate 0 keeps the source rate.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm, rate, err := dopplersim.RenderToMono16(src, traj, doppler.DefaultOptions(), 8000, 4096)
func RenderToMono16(src audio.Source, traj doppler.Trajectory, opts doppler.Options, targetRate, bufferSize int) ([]int16, int, error) {
	if targetRate < 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidRate, targetRate)
	}

	res, err := Render(src, traj, opts)
	if err != nil {
		return nil, 0, err
	}

	rate := res.SampleRate
	samples := res.Samples
	if targetRate != 0 && targetRate != rate {
		if samples, err = Resample(samples, rate, targetRate, bufferSize); err != nil {
			return nil, 0, err
		}
		rate = targetRate
	}

	return ToPCM16(samples), rate, nil
}

// ToPCM16 clamps samples to [-1, 1] and scales them to int16.
func ToPCM16(samples []float64) []int16 {
	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = int16(utils.FloatToPCM(v, 16))
	}
	return pcm
}
