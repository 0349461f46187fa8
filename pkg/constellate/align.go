package constellate

// Alignment is the result of aligning one Fingerprint against another
//: the estimated time offset, in seconds, between the aligned
// Fingerprint's clip and the reference.
type Alignment struct {
	// EstimatedTimeOffset is the reference's pattern position minus the
	// aligned clip's, in seconds: negative means the aligned clip appears
	// later than the reference by that many seconds, positive means earlier.
	EstimatedTimeOffset float64
}

// Align estimates the time offset between f ("self") and reference by a
// two-pass histogram vote over matching pattern positions.
//
// f and reference must share a structurally identical Configuration,
// else ErrFingerprintConfigurationMismatch. If the two fingerprints
// share no patterns, ErrNoMatchesFound.
func (f *Fingerprint) Align(reference *Fingerprint, opts FittingOptions) (Alignment, error) {
	if f.configuration != reference.configuration {
		return Alignment{}, ErrFingerprintConfigurationMismatch
	}

	finest := f.configuration.FinestTimeResolution()
	tr := opts.TimeResolution
	if tr < finest {
		tr = finest
	}
	trc := opts.TimeResolutionCoarse
	if trc < finest {
		trc = finest
	}

	sampleRate := float64(f.configuration.SampleRate)

	diffs := make([]float64, 0, len(f.patterns))
	for p, position := range f.patterns {
		if refPosition, ok := reference.patterns[p]; ok {
			diffs = append(diffs, float64(refPosition-position)/sampleRate)
		}
	}

	if len(diffs) == 0 {
		return Alignment{}, ErrNoMatchesFound
	}

	coarseCounts, coarseCenters := histogram(diffs, trc)
	center := coarseCenters[argmaxFirstWins(coarseCounts)]

	half := opts.FocusInterval / 2
	focus := make([]float64, 0, len(diffs))
	for _, d := range diffs {
		if d >= center-half && d <= center+half {
			focus = append(focus, d)
		}
	}

	fineCounts, fineCenters := histogram(focus, tr)
	offset := fineCenters[argmaxFirstWins(fineCounts)]

	return Alignment{EstimatedTimeOffset: offset}, nil
}
