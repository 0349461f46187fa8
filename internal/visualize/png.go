// Package visualize renders a constellate.Spectrum to a PNG spectrogram
// image for operator debugging. It is a diagnostics-only adapter: no
// core operation calls into it.
package visualize

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/eligwz/spectrogram"

	"github.com/constellatefp/constellate/pkg/constellate"
)

// RenderPNG draws spec's log-magnitude Spectrum as a PNG heatmap at
// path: one column per STFT frame, one row per frequency bin, darkest
// at the lowest magnitude in the whole spectrum and brightest at the
// highest.
func RenderPNG(spec *constellate.Spectrum, path string) error {
	if len(spec.Positions) == 0 || len(spec.Frequencies) == 0 {
		return fmt.Errorf("visualize: spectrum has no frames")
	}

	width := len(spec.Positions)
	height := len(spec.Frequencies)

	img := spectrogram.NewImage128(image.Rect(0, 0, width, height))
	black := spectrogram.ParseColor("000000")
	draw.Draw(img, img.Bounds(), image.NewUniform(black), image.Point{}, draw.Src)

	lo, hi := magnitudeRange(spec.Magnitudes)

	for h, row := range spec.Magnitudes {
		for k, mag := range row {
			// Frequency increases upward: invert the row index so low
			// frequencies land near the image bottom.
			y := height - 1 - k
			img.Set(h, y, heatColor(mag, lo, hi))
		}
	}

	if err := spectrogram.SavePng(img, path); err != nil {
		return fmt.Errorf("visualize: saving PNG: %w", err)
	}
	return nil
}

func magnitudeRange(magnitudes [][]float64) (lo, hi float64) {
	lo, hi = magnitudes[0][0], magnitudes[0][0]
	for _, row := range magnitudes {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

func heatColor(v, lo, hi float64) color.Color {
	t := 0.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(255 * t),
		G: uint8(255 * t * t),
		B: uint8(255 * (1 - t)),
		A: 255,
	}
}
