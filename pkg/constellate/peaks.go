package constellate

// peak is a single spectral landmark: a frequency/position pair
// that is the maximum of its local neighborhood and clears the
// amplitude floor and frequency gate.
type peak struct {
	frequency int
	position  int
}

// extractPeaks runs the 2-D local-maximum dilation, amplitude floor, and
// frequency gate. Enumeration is row-major by frame then by frequency
// bin ascending — pattern generation's last-writer-wins semantics
// depend on this order.
func extractPeaks(s *spectrum, cfg PeaksConfiguration) []peak {
	H := len(s.stft)
	if H == 0 {
		return nil
	}
	W := len(s.frequencies)

	flat := make([]float64, 0, H*W)
	for _, row := range s.stft {
		flat = append(flat, row...)
	}

	maxAmp := approximatePercentile(flat, percentileHistogramDelta, cfg.MaximumAmplitudeApproximatePercentile)
	minAmp := maxAmp + cfg.RelativeMinimumAmplitude

	radius := cfg.LocalMaximumKernelSize / 2

	peaks := make([]peak, 0)
	for h := 0; h < H; h++ {
		row := s.stft[h]
		for k := 0; k < W; k++ {
			v := row[k]

			if v <= minAmp {
				continue
			}
			freq := s.frequencies[k]
			if freq < cfg.MinimumFrequency || freq > cfg.MaximumFrequency {
				continue
			}
			if !isLocalMax(s.stft, h, k, radius) {
				continue
			}

			peaks = append(peaks, peak{frequency: freq, position: s.positions[h]})
		}
	}

	return peaks
}

// isLocalMax reports whether stft[h][k] equals the maximum of its
// rectangular (2*radius+1) square neighborhood, clamped at the image
// boundary (replicate-edge dilation).
func isLocalMax(stft [][]float64, h, k, radius int) bool {
	H := len(stft)
	W := len(stft[0])
	v := stft[h][k]

	for dh := -radius; dh <= radius; dh++ {
		hh := h + dh
		if hh < 0 || hh >= H {
			continue
		}
		row := stft[hh]
		for dk := -radius; dk <= radius; dk++ {
			kk := k + dk
			if kk < 0 || kk >= W {
				continue
			}
			if row[kk] > v {
				return false
			}
		}
	}
	return true
}
