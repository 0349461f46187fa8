package constellate

import "testing"

func TestIsLocalMaxSingleCellRadius(t *testing.T) {
	grid := [][]float64{
		{1, 2, 1},
		{2, 5, 2},
		{1, 2, 1},
	}

	if !isLocalMax(grid, 1, 1, 1) {
		t.Error("expected center cell (max) to be a local max")
	}
	if isLocalMax(grid, 0, 1, 1) {
		t.Error("expected edge cell (2, below center's 5) to not be a local max")
	}
}

func TestIsLocalMaxClampsAtBoundary(t *testing.T) {
	grid := [][]float64{
		{9, 1},
		{1, 1},
	}
	if !isLocalMax(grid, 0, 0, 1) {
		t.Error("expected corner cell with highest value to be a local max under clamped boundary")
	}
}

func TestExtractPeaksRespectsFloorAndFrequencyGate(t *testing.T) {
	sampleRate := 8000
	stft := STFTConfiguration{Segment: 256, Overlap: 128}
	audio := sineWave([]float64{300, 900, 2600}, sampleRate, 24000)

	s, err := buildSpectrum(audio, sampleRate, stft)
	if err != nil {
		t.Fatalf("buildSpectrum returned error: %v", err)
	}

	cfg := PeaksConfiguration{
		LocalMaximumKernelSize:                5,
		MaximumAmplitudeApproximatePercentile: 0.95,
		RelativeMinimumAmplitude:              -20,
		MinimumFrequency:                      100,
		MaximumFrequency:                      2000,
	}

	flat := make([]float64, 0)
	for _, row := range s.stft {
		flat = append(flat, row...)
	}
	maxAmp := approximatePercentile(flat, percentileHistogramDelta, cfg.MaximumAmplitudeApproximatePercentile)
	minAmp := maxAmp + cfg.RelativeMinimumAmplitude

	peaks := extractPeaks(s, cfg)

	for _, p := range peaks {
		if p.frequency < cfg.MinimumFrequency || p.frequency > cfg.MaximumFrequency {
			t.Errorf("peak frequency %d outside gate [%d, %d]", p.frequency, cfg.MinimumFrequency, cfg.MaximumFrequency)
		}
	}

	// Re-derive amplitude at each returned peak's (position, frequency)
	// cell and confirm it clears the floor.
	posIndex := make(map[int]int, len(s.positions))
	for i, pos := range s.positions {
		posIndex[pos] = i
	}
	freqIndex := make(map[int]int, len(s.frequencies))
	for i, f := range s.frequencies {
		freqIndex[f] = i
	}
	for _, p := range peaks {
		h := posIndex[p.position]
		k := freqIndex[p.frequency]
		if s.stft[h][k] <= minAmp {
			t.Errorf("peak at (pos=%d, freq=%d) amplitude %f does not clear floor %f", p.position, p.frequency, s.stft[h][k], minAmp)
		}
	}
}

func TestExtractPeaksEnumerationOrder(t *testing.T) {
	sampleRate := 8000
	stft := STFTConfiguration{Segment: 256, Overlap: 0}
	audio := sineWave([]float64{400, 1200, 3000}, sampleRate, 24000)

	s, err := buildSpectrum(audio, sampleRate, stft)
	if err != nil {
		t.Fatalf("buildSpectrum returned error: %v", err)
	}

	cfg := PeaksConfiguration{
		LocalMaximumKernelSize:                5,
		MaximumAmplitudeApproximatePercentile: 0.9,
		RelativeMinimumAmplitude:              -30,
		MinimumFrequency:                      0,
		MaximumFrequency:                      4000,
	}

	peaks := extractPeaks(s, cfg)

	for i := 1; i < len(peaks); i++ {
		prev, cur := peaks[i-1], peaks[i]
		if cur.position < prev.position {
			t.Fatalf("peaks not sorted by position ascending at index %d: %d before %d", i, prev.position, cur.position)
		}
		if cur.position == prev.position && cur.frequency < prev.frequency {
			t.Fatalf("peaks with equal position not sorted by frequency ascending at index %d", i)
		}
	}
}
