package constellate

// PatternEntry is the externally serializable form of one Patterns
// entry. Fingerprint is otherwise opaque to callers; this is the
// seam persistence layers use instead of reaching into the internal
// pattern representation.
type PatternEntry struct {
	FrequencyA    int
	FrequencyB    int
	PositionDelta int
	Position      int
}

// Entries returns the Fingerprint's Patterns as a flat slice suitable
// for gob/json encoding. Order is unspecified — it follows Go's map
// iteration order, which varies between calls.
func (f *Fingerprint) Entries() []PatternEntry {
	entries := make([]PatternEntry, 0, len(f.patterns))
	for p, position := range f.patterns {
		entries = append(entries, PatternEntry{
			FrequencyA:    p.frequencyA,
			FrequencyB:    p.frequencyB,
			PositionDelta: p.positionDelta,
			Position:      position,
		})
	}
	return entries
}

// FromEntries reconstructs a Fingerprint from a Configuration and a
// previously-serialized Entries() slice. It performs no validation
// against the Configuration beyond what Align itself checks.
func FromEntries(cfg Configuration, entries []PatternEntry) *Fingerprint {
	patterns := make(Patterns, len(entries))
	for _, e := range entries {
		patterns[pattern{frequencyA: e.FrequencyA, frequencyB: e.FrequencyB, positionDelta: e.PositionDelta}] = e.Position
	}
	return &Fingerprint{configuration: cfg, patterns: patterns}
}
