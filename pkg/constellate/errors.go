package constellate

import "errors"

// Construction errors. Returned by New when the input audio or
// STFT configuration cannot produce a usable Fingerprint.
var (
	// ErrAudioTooShort is returned when the sample buffer has fewer than
	// 2*segment samples or fewer than sampleRate samples (< 1s of audio).
	ErrAudioTooShort = errors.New("constellate: audio too short")

	// ErrSTFTSegmentTooShort is returned when segment <= 16.
	ErrSTFTSegmentTooShort = errors.New("constellate: STFT segment too short")

	// ErrInvalidSTFTSegment is returned when segment is not a power of two.
	ErrInvalidSTFTSegment = errors.New("constellate: STFT segment is not a power of two")

	// ErrCannotSetupFFT is returned when the underlying FFT backend fails
	// to initialize for the requested segment size.
	ErrCannotSetupFFT = errors.New("constellate: cannot set up FFT")

	// ErrNoPatternsFound is returned when peak extraction yields no pairs
	// that satisfy the patterns configuration.
	ErrNoPatternsFound = errors.New("constellate: no patterns found")
)

// Alignment errors.
var (
	// ErrFingerprintConfigurationMismatch is returned when Align is called
	// on two fingerprints built with structurally different Configurations.
	ErrFingerprintConfigurationMismatch = errors.New("constellate: fingerprint configuration mismatch")

	// ErrNoMatchesFound is returned when two fingerprints share no patterns.
	ErrNoMatchesFound = errors.New("constellate: no matches found")
)
