package service

import (
	"github.com/constellatefp/constellate/pkg/constellate"
)

// Config holds configuration options for the constellate service.
type Config struct {
	// DBPath is the path to the fingerprint store's SQLite file.
	// Default: "constellate.sqlite3"
	DBPath string

	// TempDir is the directory audio conversion writes intermediate
	// WAV files into. Default: os.TempDir()
	TempDir string

	// SampleRate is the target sample rate audio is decoded/converted to
	// before fingerprinting. Default: 16000 Hz.
	SampleRate int

	// STFT, Peaks, and Patterns override the corresponding sections of
	// the constellate.Configuration built for every fingerprint this
	// service produces. Zero values fall back to
	// constellate.DefaultConfiguration().
	STFT     constellate.STFTConfiguration
	Peaks    constellate.PeaksConfiguration
	Patterns constellate.PatternsConfiguration

	// Fitting overrides the alignment vote's FittingOptions. A zero
	// value falls back to constellate.DefaultFittingOptions().
	Fitting constellate.FittingOptions

	// Logger is the logger instance to use. If nil, a default logger is
	// created via pkg/logger.GetLogger().
	Logger Logger
}

// Option is a functional option for configuring the service.
type Option func(*Config)

// WithDBPath sets the fingerprint store's database file path.
func WithDBPath(path string) Option {
	return func(c *Config) { c.DBPath = path }
}

// WithTempDir sets the temporary directory used for audio conversion.
func WithTempDir(dir string) Option {
	return func(c *Config) { c.TempDir = dir }
}

// WithSampleRate sets the target sample rate for decoded/converted audio.
func WithSampleRate(rate int) Option {
	return func(c *Config) { c.SampleRate = rate }
}

// WithSTFT overrides the STFT sub-configuration applied to fingerprints.
func WithSTFT(stft constellate.STFTConfiguration) Option {
	return func(c *Config) { c.STFT = stft }
}

// WithPeaks overrides the peak-extraction sub-configuration.
func WithPeaks(peaks constellate.PeaksConfiguration) Option {
	return func(c *Config) { c.Peaks = peaks }
}

// WithPatterns overrides the pattern-generation sub-configuration.
func WithPatterns(patterns constellate.PatternsConfiguration) Option {
	return func(c *Config) { c.Patterns = patterns }
}

// WithFitting overrides the alignment vote's FittingOptions.
func WithFitting(fitting constellate.FittingOptions) Option {
	return func(c *Config) { c.Fitting = fitting }
}

// WithLogger sets a custom logger.
func WithLogger(log Logger) Option {
	return func(c *Config) { c.Logger = log }
}

func defaultConfig() *Config {
	return &Config{
		DBPath:     "constellate.sqlite3",
		TempDir:    "",
		SampleRate: 16000,
	}
}

// configuration assembles a constellate.Configuration from the service
// Config, falling back to constellate.DefaultConfiguration() for any
// sub-configuration left at its zero value.
func (c *Config) configuration() constellate.Configuration {
	cfg := constellate.DefaultConfiguration()
	if c.SampleRate != 0 {
		cfg.SampleRate = c.SampleRate
	}
	if (c.STFT != constellate.STFTConfiguration{}) {
		cfg.STFT = c.STFT
	}
	if (c.Peaks != constellate.PeaksConfiguration{}) {
		cfg.Peaks = c.Peaks
	}
	if (c.Patterns != constellate.PatternsConfiguration{}) {
		cfg.Patterns = c.Patterns
	}
	return cfg
}

// fittingOptions returns c.Fitting, falling back to
// constellate.DefaultFittingOptions() when left at its zero value.
func (c *Config) fittingOptions() constellate.FittingOptions {
	if (c.Fitting != constellate.FittingOptions{}) {
		return c.Fitting
	}
	return constellate.DefaultFittingOptions()
}
