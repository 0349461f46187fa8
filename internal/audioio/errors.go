package audioio

import "errors"

// ErrCannotCreatePCMBuffer is returned when a file does not decode as a
// valid RIFF/WAVE PCM stream, or decodes to zero samples.
var ErrCannotCreatePCMBuffer = errors.New("audioio: cannot create PCM buffer from input file")

// ErrCannotCreateAudioConverter is returned when the external resample/
// downmix step (ffmpeg) cannot be run or fails.
var ErrCannotCreateAudioConverter = errors.New("audioio: cannot create audio converter")
