package trace

import "fmt"

// Trace is an immutable dense array of binary measurement outcomes indexed
// by (shot, round, site). Construct with New; the zero value is not usable.
type Trace struct {
	sites     []string
	siteIndex map[string]int
	shots     int
	rounds    int

	// data is row-major: shot, then round, then site.
	data []uint8
}

// New validates outcomes against the completeness invariant and returns an
// immutable Trace. outcomes[shot][round][site] must be 0 or 1; every shot
// must carry the same number of rounds and every round exactly len(sites)
// outcomes. The outcome array is copied, so the caller may reuse it.
//
// Errors: ErrNoSites, ErrEmptySiteLabel, ErrDuplicateSite, ErrNoShots, and
// *CoordError (unwrapping to ErrMalformedTrace) for shape or value gaps.
//
// Complexity: O(shots·rounds·sites).
func New(sites []string, outcomes [][][]uint8) (*Trace, error) {
	if len(sites) == 0 {
		return nil, ErrNoSites
	}
	siteIndex := make(map[string]int, len(sites))
	for i, s := range sites {
		if s == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptySiteLabel, i)
		}
		if _, seen := siteIndex[s]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSite, s)
		}
		siteIndex[s] = i
	}
	if len(outcomes) == 0 {
		return nil, ErrNoShots
	}

	rounds := len(outcomes[0])
	numSites := len(sites)
	data := make([]uint8, 0, len(outcomes)*rounds*numSites)
	for s, shot := range outcomes {
		if len(shot) != rounds {
			return nil, &CoordError{
				Shot:   s,
				Round:  min(len(shot), rounds),
				Reason: fmt.Sprintf("expected %d rounds, got %d", rounds, len(shot)),
			}
		}
		for r, row := range shot {
			if len(row) != numSites {
				site := ""
				if len(row) < numSites {
					site = sites[len(row)]
				}

				return nil, &CoordError{
					Shot:   s,
					Round:  r,
					Site:   site,
					Reason: fmt.Sprintf("expected %d site outcomes, got %d", numSites, len(row)),
				}
			}
			for q, v := range row {
				if v > 1 {
					return nil, &CoordError{
						Shot:   s,
						Round:  r,
						Site:   sites[q],
						Reason: fmt.Sprintf("outcome %d is not binary", v),
					}
				}
			}
			data = append(data, row...)
		}
	}

	return &Trace{
		sites:     append([]string(nil), sites...),
		siteIndex: siteIndex,
		shots:     len(outcomes),
		rounds:    rounds,
		data:      data,
	}, nil
}

// NumShots reports the number of shots in the trace.
func (t *Trace) NumShots() int { return t.shots }

// NumRounds reports the number of syndrome-extraction rounds per shot.
func (t *Trace) NumRounds() int { return t.rounds }

// NumSites reports the number of detector-sites per round.
func (t *Trace) NumSites() int { return len(t.sites) }

// Sites returns a copy of the ordered site labels.
func (t *Trace) Sites() []string { return append([]string(nil), t.sites...) }

// SiteIndex resolves a site label to its index in the trace's site order.
func (t *Trace) SiteIndex(label string) (int, bool) {
	i, ok := t.siteIndex[label]

	return i, ok
}

// At returns the outcome at (shot, round, site).
// Out-of-bounds indices return ErrOutOfRange rather than panicking.
func (t *Trace) At(shot, round, site int) (uint8, error) {
	if shot < 0 || shot >= t.shots || round < 0 || round >= t.rounds || site < 0 || site >= len(t.sites) {
		return 0, fmt.Errorf("%w: shot=%d round=%d site=%d", ErrOutOfRange, shot, round, site)
	}

	return t.data[(shot*t.rounds+round)*len(t.sites)+site], nil
}

// Row returns a copy of every site outcome of one (shot, round) pair, in
// site order. Complexity: O(sites).
func (t *Trace) Row(shot, round int) ([]uint8, error) {
	if shot < 0 || shot >= t.shots || round < 0 || round >= t.rounds {
		return nil, fmt.Errorf("%w: shot=%d round=%d", ErrOutOfRange, shot, round)
	}
	start := (shot*t.rounds + round) * len(t.sites)

	return append([]uint8(nil), t.data[start:start+len(t.sites)]...), nil
}
