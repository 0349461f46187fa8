package audioio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// ConvertToSampleRate downmixes inputPath to mono PCM WAV at targetRate
// using ffmpeg, writing the result into outputDir under the input's
// base name.
func ConvertToSampleRate(ctx context.Context, inputPath, outputDir string, targetRate int) (string, error) {
	if targetRate == 0 {
		targetRate = 16000
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating output dir: %v", ErrCannotCreateAudioConverter, err)
	}

	baseName := filepath.Base(inputPath)
	outputPath := filepath.Join(outputDir, baseName+".wav")

	tmpPath := outputPath + ".tmp.wav"
	defer os.Remove(tmpPath)

	cmd := exec.CommandContext(
		ctx,
		"ffmpeg",
		"-y",
		"-v", "quiet",
		"-i", inputPath,
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", targetRate),
		"-c:a", "pcm_s16le",
		tmpPath,
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: ffmpeg failed: %v (%s)", ErrCannotCreateAudioConverter, err, out)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		return "", fmt.Errorf("%w: moving converted file into place: %v", ErrCannotCreateAudioConverter, err)
	}

	return outputPath, nil
}
