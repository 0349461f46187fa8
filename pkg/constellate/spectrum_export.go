package constellate

// Spectrum is a read-only view of the log-magnitude spectrogram computed
// for one clip. It exists solely so diagnostic tooling (see
// internal/visualize) can render what the core saw; it plays no part in
// Fingerprint construction or Align, which use the unexported spectrum
// type directly and discard it once patterns are derived.
type Spectrum struct {
	Frequencies []int       // length W, Hz, ascending
	Positions   []int       // length H, sample index of each frame's first sample
	Magnitudes  [][]float64 // H x W, row-major log-magnitude dB
}

// BuildSpectrum computes the STFT log-magnitude spectrogram of audio
// under cfg, for diagnostic rendering only. It duplicates part of the
// work New does internally; callers on the hot Align/New path should
// never need it.
func BuildSpectrum(audio []float32, cfg Configuration) (*Spectrum, error) {
	s, err := buildSpectrum(audio, cfg.SampleRate, cfg.STFT)
	if err != nil {
		return nil, err
	}
	return &Spectrum{Frequencies: s.frequencies, Positions: s.positions, Magnitudes: s.stft}, nil
}
