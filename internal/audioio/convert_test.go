package audioio

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestConvertToSampleRate(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available on PATH")
	}

	src := filepath.Join(t.TempDir(), "source.wav")
	writeTestWAV(t, src, 2, 44100, 0.5, 440)

	outDir := filepath.Join(t.TempDir(), "converted")
	out, err := ConvertToSampleRate(context.Background(), src, outDir, 16000)
	if err != nil {
		t.Fatalf("ConvertToSampleRate returned error: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected converted file at %s: %v", out, err)
	}

	decoded, err := DecodeWAV(out)
	if err != nil {
		t.Fatalf("DecodeWAV on converted file failed: %v", err)
	}
	if decoded.SampleRate != 16000 {
		t.Errorf("expected converted sample rate 16000, got %d", decoded.SampleRate)
	}
}

func TestConvertToSampleRateMissingInput(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available on PATH")
	}

	outDir := filepath.Join(t.TempDir(), "converted")
	if _, err := ConvertToSampleRate(context.Background(), filepath.Join(t.TempDir(), "missing.wav"), outDir, 16000); err == nil {
		t.Error("expected error for missing input file")
	}
}
