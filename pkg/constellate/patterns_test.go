package constellate

import "testing"

func TestMakePatternsDeltaIsPartOfKey(t *testing.T) {
	// Two anchors with the same frequency pair with the same successor at
	// different deltas; because the delta is part of the key, each anchor
	// keeps its own map slot and neither overwrites the other.
	peaks := []peak{
		{frequency: 100, position: 0},
		{frequency: 100, position: 10}, // same frequency as peaks[0], different delta to peaks[2]
		{frequency: 200, position: 20},
	}
	cfg := PatternsConfiguration{Fan: 3, MinimumSamplePositionDelta: 0, MaximumSamplePositionDelta: 1000}

	patterns := makePatterns(peaks, cfg)

	key := pattern{frequencyA: 100, frequencyB: 200, positionDelta: 20}
	got, ok := patterns[key]
	if !ok {
		t.Fatalf("expected pattern %+v to be present", key)
	}
	// i=1 (position 10) -> delta 10; i=0 (position 0) -> delta 20.
	// Only i=0 produces key{100,200,20}; i=1 produces key{100,200,10}.
	if got != 0 {
		t.Errorf("expected anchor position 0 for delta-20 pattern, got %d", got)
	}

	otherKey := pattern{frequencyA: 100, frequencyB: 200, positionDelta: 10}
	got2, ok2 := patterns[otherKey]
	if !ok2 || got2 != 10 {
		t.Errorf("expected anchor position 10 for delta-10 pattern, got %d (present=%v)", got2, ok2)
	}
}

func TestMakePatternsOverwriteWithSameKey(t *testing.T) {
	// Construct a scenario where two distinct anchors produce the exact
	// same (frequencyA, frequencyB, delta) key: anchor 0 -> target at
	// delta 10, and anchor 5 -> target at delta 10 with the same
	// frequencies. The later anchor (i=1, peaks[1]) must win.
	peaks := []peak{
		{frequency: 50, position: 0},
		{frequency: 50, position: 5},
		{frequency: 60, position: 10},
		{frequency: 60, position: 15},
	}
	cfg := PatternsConfiguration{Fan: 4, MinimumSamplePositionDelta: 0, MaximumSamplePositionDelta: 1000}

	patterns := makePatterns(peaks, cfg)

	key := pattern{frequencyA: 50, frequencyB: 60, positionDelta: 10}
	got, ok := patterns[key]
	if !ok {
		t.Fatalf("expected pattern %+v present", key)
	}
	// i=0 (pos 0) pairs with j s.t. target.position-0==10 -> peaks[2] (pos10): key{50,60,10} anchor 0.
	// i=1 (pos 5) pairs with peaks[3] (pos 15): delta 10, same freqs: key{50,60,10} anchor 5.
	// i=1 > i=0 in iteration order, so anchor 5 must win.
	if got != 5 {
		t.Errorf("expected last-writer-wins anchor position 5, got %d", got)
	}
}

func TestMakePatternsRespectsDeltaBounds(t *testing.T) {
	peaks := []peak{
		{frequency: 10, position: 0},
		{frequency: 20, position: 5},
		{frequency: 30, position: 500},
	}
	cfg := PatternsConfiguration{Fan: 3, MinimumSamplePositionDelta: 10, MaximumSamplePositionDelta: 100}

	patterns := makePatterns(peaks, cfg)

	if len(patterns) != 0 {
		t.Errorf("expected no patterns (all deltas either < 10 or > 100), got %d", len(patterns))
	}
}

func TestMakePatternsFanLimitsPairCount(t *testing.T) {
	peaks := make([]peak, 6)
	for i := range peaks {
		peaks[i] = peak{frequency: 100 + i, position: i * 10}
	}
	cfg := PatternsConfiguration{Fan: 2, MinimumSamplePositionDelta: 0, MaximumSamplePositionDelta: 1000}

	patterns := makePatterns(peaks, cfg)

	// Fan=2 means each anchor pairs with exactly 1 successor (j=1 only).
	// 6 peaks -> 5 anchors with a successor -> at most 5 distinct keys,
	// and here all keys are distinct (strictly increasing frequencies).
	if len(patterns) != 5 {
		t.Errorf("expected 5 patterns with Fan=2 over 6 distinct peaks, got %d", len(patterns))
	}
}
