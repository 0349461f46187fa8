// Package audioio decodes and resamples audio files into the mono
// float32 PCM buffers pkg/constellate operates on.
package audioio

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// DecodedAudio is a single-channel PCM buffer ready for fingerprinting.
type DecodedAudio struct {
	Samples    []float32
	SampleRate int
}

// DecodeWAV reads a RIFF/WAVE PCM file and returns normalized, mono
// samples in [-1, 1]. Stereo and multi-channel files are downmixed by
// channel averaging.
func DecodeWAV(path string) (*DecodedAudio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audioio: opening %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, ErrCannotCreatePCMBuffer
	}

	duration, err := decoder.Duration()
	if err != nil {
		return nil, fmt.Errorf("%w: reading duration: %v", ErrCannotCreatePCMBuffer, err)
	}

	totalSamples := int(duration.Seconds() * float64(decoder.SampleRate) * float64(decoder.NumChans))
	if totalSamples == 0 {
		return nil, ErrCannotCreatePCMBuffer
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(decoder.NumChans),
			SampleRate:  int(decoder.SampleRate),
		},
		Data:           make([]int, totalSamples),
		SourceBitDepth: int(decoder.BitDepth),
	}

	if _, err := decoder.PCMBuffer(buf); err != nil {
		return nil, fmt.Errorf("%w: reading PCM samples: %v", ErrCannotCreatePCMBuffer, err)
	}
	if len(buf.Data) == 0 {
		return nil, ErrCannotCreatePCMBuffer
	}

	numChans := buf.Format.NumChannels
	if numChans < 1 {
		numChans = 1
	}
	maxVal := float32(int(1) << (uint(decoder.BitDepth) - 1))

	frames := len(buf.Data) / numChans
	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for c := 0; c < numChans; c++ {
			sum += float32(buf.Data[i*numChans+c]) / maxVal
		}
		samples[i] = sum / float32(numChans)
	}

	return &DecodedAudio{Samples: samples, SampleRate: buf.Format.SampleRate}, nil
}
