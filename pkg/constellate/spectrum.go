package constellate

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// logMagnitudeFloor keeps 20*log10(.) finite for near-silent bins.
const logMagnitudeFloor = 1e-20

// spectrum is the internal STFT representation. It exists only
// during Fingerprint construction: once patterns have been derived from
// it, the spectrum is discarded and only the Patterns mapping and
// Configuration persist in the Fingerprint.
type spectrum struct {
	frequencies []int     // length W, Hz
	positions   []int     // length H, sample index of each frame's first sample
	stft        [][]float64 // H x W, row-major log-magnitude dB
}

// hannWindow returns a Hann window of length n normalized so that its
// elements sum to 1.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// buildSpectrum computes the STFT of audio and converts it to a
// log-magnitude spectrogram.
func buildSpectrum(audio []float32, sampleRate int, cfg STFTConfiguration) (*spectrum, error) {
	if cfg.Segment <= 16 {
		return nil, ErrSTFTSegmentTooShort
	}
	if !isPowerOfTwo(cfg.Segment) {
		return nil, ErrInvalidSTFTSegment
	}
	sampleCount := len(audio)
	if sampleCount <= 2*cfg.Segment || sampleCount <= sampleRate {
		return nil, ErrAudioTooShort
	}

	hop := cfg.Hop()
	if hop <= 0 {
		return nil, ErrInvalidSTFTSegment
	}

	win := hannWindow(cfg.Segment)

	// 1/2 compensates the packed real-FFT convention some accelerated FFT
	// backends use. go-dsp/fft.FFTReal returns a conventional
	// conjugate-symmetric full spectrum with an explicit DC and Nyquist
	// bin, so no packed-Nyquist unzeroing is needed here; the /2 scale is
	// kept for numeric parity with that documented convention.
	windowSum := 0.0
	for _, v := range win {
		windowSum += v
	}
	scale := 1.0 / windowSum / 2.0

	W := cfg.Segment / 2
	H := (sampleCount-cfg.Segment)/hop + 1

	frequencies := make([]int, W)
	for i := 0; i < W; i++ {
		frequencies[i] = int(math.Round(float64(i) * (float64(sampleRate) / 2) / float64(W)))
	}

	positions := make([]int, H)
	stftRows := make([][]float64, H)

	frame := make([]float64, cfg.Segment)
	for h := 0; h < H; h++ {
		start := h * hop
		for n := 0; n < cfg.Segment; n++ {
			frame[n] = float64(audio[start+n]) * win[n]
		}

		bins, err := fftReal(frame)
		if err != nil {
			return nil, err
		}

		row := make([]float64, W)
		for k := 0; k < W; k++ {
			mag := cabs(bins[k])
			row[k] = 20 * math.Log10(math.Max(mag*scale, logMagnitudeFloor))
		}
		stftRows[h] = row
		positions[h] = start
	}

	return &spectrum{frequencies: frequencies, positions: positions, stft: stftRows}, nil
}

// fftReal wraps github.com/mjibson/go-dsp/fft's real-input FFT, returning
// the first Segment/2 complex bins (DC through Nyquist-1).
func fftReal(frame []float64) (result []complex128, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrCannotSetupFFT
		}
	}()
	full := fft.FFTReal(frame)
	return full[:len(full)/2], nil
}

func cabs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
