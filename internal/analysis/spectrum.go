package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/quadsim/internal/flight"
)

var ErrTooFewSamples = errors.New("analysis: need at least two frames")

// PowerSpectrum returns the magnitudes of the non-negative frequency
// bins of a real series.
func PowerSpectrum(data []float64) []float64 {
	bins := fft.FFTReal(data)
	ps := make([]float64, len(bins)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps
}

type Spectrum struct {
	Freqs []float64
	Power []float64
}

// Dominant returns the strongest non-DC bin. ok is false when the
// spectrum is flat.
func (s Spectrum) Dominant() (freq, power float64, ok bool) {
	idx := 0
	for i := 1; i < len(s.Power); i++ {
		if s.Power[i] > power {
			power, idx = s.Power[i], i
		}
	}
	if idx == 0 || power < 1e-12 {
		return 0, 0, false
	}
	return s.Freqs[idx], power, true
}

// AxisSpectrum analyses one control axis. The series is mean-removed and
// zero-padded to a power of two so bins land on round frequencies; frame
// spacing gives the sample rate.
func AxisSpectrum(frames []flight.Frame, axis flight.Axis) (Spectrum, error) {
	if len(frames) < 2 {
		return Spectrum{}, ErrTooFewSamples
	}
	dt := frames[1].Time - frames[0].Time
	if dt <= 0 || math.IsNaN(dt) {
		return Spectrum{}, errors.New("analysis: frames not evenly spaced in time")
	}

	n := 1
	for n < len(frames) {
		n *= 2
	}

	mean := 0.0
	for _, f := range frames {
		mean += f.ControlState.Axes()[axis]
	}
	mean /= float64(len(frames))

	padded := make([]float64, n)
	for i, f := range frames {
		padded[i] = f.ControlState.Axes()[axis] - mean
	}

	ps := PowerSpectrum(padded)
	freqs := make([]float64, len(ps))
	for k := range freqs {
		freqs[k] = float64(k) / (float64(n) * dt)
	}
	return Spectrum{Freqs: freqs, Power: ps}, nil
}
