package constellate

// STFTConfiguration controls the short-time Fourier transform.
type STFTConfiguration struct {
	// Segment is the frame size in samples. Must be a power of two and
	// greater than 16.
	Segment int

	// Overlap is the number of samples shared between consecutive frames.
	// Must satisfy 0 <= Overlap < Segment.
	Overlap int
}

// Hop returns the sample stride between consecutive STFT frames.
func (c STFTConfiguration) Hop() int {
	return c.Segment - c.Overlap
}

// PeaksConfiguration controls spectral peak extraction.
type PeaksConfiguration struct {
	// LocalMaximumKernelSize is the side length of the square dilation
	// kernel used for the 2-D local-maximum test. Must be odd and positive.
	LocalMaximumKernelSize int

	// MaximumAmplitudeApproximatePercentile is the percentile (in [0,1])
	// of the log-magnitude distribution used as the reference maximum
	// amplitude, fed into approximatePercentile.
	MaximumAmplitudeApproximatePercentile float64

	// RelativeMinimumAmplitude is the dB offset below the approximate
	// maximum amplitude a cell must exceed to qualify as a peak.
	// Typically negative.
	RelativeMinimumAmplitude float64

	// MinimumFrequency and MaximumFrequency gate peaks to a frequency band.
	MinimumFrequency int
	MaximumFrequency int
}

// PatternsConfiguration controls pairing of peaks into patterns.
type PatternsConfiguration struct {
	// Fan bounds the pairing window: each anchor peak pairs with its next
	// Fan-1 successor peaks. Must be >= 2.
	Fan int

	// MinimumSamplePositionDelta and MaximumSamplePositionDelta bound the
	// accepted Δposition between anchor and target peak.
	MinimumSamplePositionDelta int
	MaximumSamplePositionDelta int
}

// Configuration is the full, immutable parameterization of a Fingerprint
//. Two Fingerprints may only be aligned against each other if their
// Configurations are structurally equal.
type Configuration struct {
	// SampleRate is the sample rate, in Hz, of the PCM buffer the
	// Fingerprint was built from.
	SampleRate int

	STFT     STFTConfiguration
	Peaks    PeaksConfiguration
	Patterns PatternsConfiguration
}

// FinestTimeResolution returns hop/sampleRate in seconds: the lower bound
// on alignment precision achievable with this Configuration.
func (c Configuration) FinestTimeResolution() float64 {
	return float64(c.STFT.Hop()) / float64(c.SampleRate)
}

// DefaultConfiguration returns the documented default parameterization:
// 16kHz sample rate, 5-tap local-max kernel, 0.999 amplitude percentile,
// -35dB relative floor, fan-out of 10.
func DefaultConfiguration() Configuration {
	return Configuration{
		SampleRate: 16000,
		STFT: STFTConfiguration{
			Segment: 1024,
			Overlap: 0,
		},
		Peaks: PeaksConfiguration{
			LocalMaximumKernelSize:                5,
			MaximumAmplitudeApproximatePercentile: 0.999,
			RelativeMinimumAmplitude:              -35,
			MinimumFrequency:                      0,
			MaximumFrequency:                      8000,
		},
		Patterns: PatternsConfiguration{
			Fan:                        10,
			MinimumSamplePositionDelta: 0,
			MaximumSamplePositionDelta: 1 << 30,
		},
	}
}

// Option configures a Configuration using the functional-options pattern.
type Option func(*Configuration)

// WithSampleRate overrides the sample rate.
func WithSampleRate(rate int) Option {
	return func(c *Configuration) { c.SampleRate = rate }
}

// WithSTFT overrides the STFT sub-configuration.
func WithSTFT(stft STFTConfiguration) Option {
	return func(c *Configuration) { c.STFT = stft }
}

// WithPeaks overrides the peak-extraction sub-configuration.
func WithPeaks(peaks PeaksConfiguration) Option {
	return func(c *Configuration) { c.Peaks = peaks }
}

// WithPatterns overrides the pattern-generation sub-configuration.
func WithPatterns(patterns PatternsConfiguration) Option {
	return func(c *Configuration) { c.Patterns = patterns }
}

// NewConfiguration builds a Configuration from DefaultConfiguration with
// the given Options applied in order.
func NewConfiguration(opts ...Option) Configuration {
	cfg := DefaultConfiguration()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// FittingOptions parameterizes the two-pass alignment vote.
type FittingOptions struct {
	// TimeResolution is the bin width, in seconds, of the fine (second)
	// pass histogram. Default 0.001s.
	TimeResolution float64

	// TimeResolutionCoarse is the bin width, in seconds, of the coarse
	// (first) pass histogram. Default 0.1s.
	TimeResolutionCoarse float64

	// FocusInterval is the width, in seconds, of the window around the
	// coarse estimate that the fine pass refines within. Default 5s.
	FocusInterval float64
}

// DefaultFittingOptions returns the documented default fitting parameters.
func DefaultFittingOptions() FittingOptions {
	return FittingOptions{
		TimeResolution:       0.001,
		TimeResolutionCoarse: 0.1,
		FocusInterval:        5,
	}
}
