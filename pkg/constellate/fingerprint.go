package constellate

// Fingerprint is an immutable, shift-invariant acoustic fingerprint: a
// Configuration paired with the multiset of landmark Patterns derived
// from one audio clip. It is safe to share across goroutines after
// construction; nothing in this package mutates a Fingerprint once New
// returns it.
type Fingerprint struct {
	configuration Configuration
	patterns      Patterns
}

// Configuration returns the Configuration this Fingerprint was built
// with. Two Fingerprints can only be aligned if their Configurations are
// structurally equal.
func (f *Fingerprint) Configuration() Configuration {
	return f.configuration
}

// New builds a Fingerprint from a mono float32 PCM buffer at the sample
// rate declared in cfg by composing spectrum -> peaks -> patterns.
// audio must already be at cfg.SampleRate; resampling,
// downmixing, and container decoding are the caller's responsibility
// — see the internal/audioio package for that boundary.
func New(audio []float32, cfg Configuration) (*Fingerprint, error) {
	s, err := buildSpectrum(audio, cfg.SampleRate, cfg.STFT)
	if err != nil {
		return nil, err
	}

	peaks := extractPeaks(s, cfg.Peaks)
	patterns := makePatterns(peaks, cfg.Patterns)

	if len(patterns) == 0 {
		return nil, ErrNoPatternsFound
	}

	return &Fingerprint{configuration: cfg, patterns: patterns}, nil
}
