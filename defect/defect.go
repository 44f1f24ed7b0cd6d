package defect

import (
	"errors"
	"fmt"

	"github.com/qec-tools/qecutil/trace"
)

var (
	// ErrNilTrace indicates a nil *trace.Trace was passed to an extractor.
	ErrNilTrace = errors.New("defect: trace is nil")

	// ErrReferenceLength indicates the per-site reference baseline does not
	// match the trace's site count.
	ErrReferenceLength = errors.New("defect: reference length mismatch")

	// ErrNonBinaryReference indicates a reference value outside {0,1}.
	ErrNonBinaryReference = errors.New("defect: reference value is not binary")

	// ErrOutOfRange indicates a shot, round, or site index outside bounds.
	ErrOutOfRange = errors.New("defect: index out of range")
)

// Set is an immutable collection of defect indicators indexed by
// (shot, round, site). Round indices refer to defect rounds, which are
// shifted relative to the source trace (see Extract).
type Set struct {
	sites  []string
	shots  int
	rounds int
	data   []uint8 // row-major: shot, round, site
}

// Extract computes defects across consecutive rounds of tr:
// defect[s][r][q] = outcome[s][r+1][q] XOR outcome[s][r][q].
// The result has tr.NumRounds()−1 defect rounds; a single-round trace
// yields an empty Set.
//
// Complexity: O(shots·rounds·sites).
func Extract(tr *trace.Trace) (*Set, error) {
	return extract(tr, nil)
}

// ExtractWithReference prepends the comparison of round 0 against a fixed
// baseline (one binary value per site, in trace site order; the known
// initial state of the experiment), so the result has tr.NumRounds()
// defect rounds. A nil reference means an all-zero baseline.
func ExtractWithReference(tr *trace.Trace, reference []uint8) (*Set, error) {
	if tr == nil {
		return nil, ErrNilTrace
	}
	if reference == nil {
		reference = make([]uint8, tr.NumSites())
	}
	if len(reference) != tr.NumSites() {
		return nil, fmt.Errorf("%w: got %d values for %d sites", ErrReferenceLength, len(reference), tr.NumSites())
	}
	for q, v := range reference {
		if v > 1 {
			return nil, fmt.Errorf("%w: site %d value %d", ErrNonBinaryReference, q, v)
		}
	}

	return extract(tr, reference)
}

// extract is the shared core. A nil reference skips the round-0 row.
func extract(tr *trace.Trace, reference []uint8) (*Set, error) {
	if tr == nil {
		return nil, ErrNilTrace
	}

	shots, rounds, sites := tr.NumShots(), tr.NumRounds(), tr.NumSites()
	defRounds := rounds - 1
	if reference != nil {
		defRounds = rounds
	}
	if defRounds < 0 {
		defRounds = 0
	}

	data := make([]uint8, 0, shots*defRounds*sites)
	for s := 0; s < shots; s++ {
		prev := reference
		for r := 0; r < rounds; r++ {
			row, err := tr.Row(s, r)
			if err != nil {
				return nil, err
			}
			if prev != nil {
				for q := 0; q < sites; q++ {
					data = append(data, row[q]^prev[q])
				}
			}
			prev = row
		}
	}

	return &Set{
		sites:  tr.Sites(),
		shots:  shots,
		rounds: defRounds,
		data:   data,
	}, nil
}

// NumShots reports the number of shots in the set.
func (d *Set) NumShots() int { return d.shots }

// NumRounds reports the number of defect rounds.
func (d *Set) NumRounds() int { return d.rounds }

// NumSites reports the number of detector-sites.
func (d *Set) NumSites() int { return len(d.sites) }

// Sites returns a copy of the ordered site labels.
func (d *Set) Sites() []string { return append([]string(nil), d.sites...) }

// At returns the defect indicator at (shot, round, site).
func (d *Set) At(shot, round, site int) (uint8, error) {
	if shot < 0 || shot >= d.shots || round < 0 || round >= d.rounds || site < 0 || site >= len(d.sites) {
		return 0, fmt.Errorf("%w: shot=%d round=%d site=%d", ErrOutOfRange, shot, round, site)
	}

	return d.data[(shot*d.rounds+round)*len(d.sites)+site], nil
}

// Counts returns the total number of firings per site, in site order.
func (d *Set) Counts() []int {
	counts := make([]int, len(d.sites))
	for i, v := range d.data {
		if v == 1 {
			counts[i%len(d.sites)]++
		}
	}

	return counts
}

// Fraction returns the firing rate per (defect round, site), averaged over
// shots. Result dimensions: [NumRounds()][NumSites()]. A set with zero
// shots or zero rounds returns an empty slice.
func (d *Set) Fraction() [][]float64 {
	if d.shots == 0 || d.rounds == 0 {
		return nil
	}
	frac := make([][]float64, d.rounds)
	for r := range frac {
		frac[r] = make([]float64, len(d.sites))
	}
	stride := d.rounds * len(d.sites)
	for s := 0; s < d.shots; s++ {
		base := s * stride
		for r := 0; r < d.rounds; r++ {
			for q := 0; q < len(d.sites); q++ {
				frac[r][q] += float64(d.data[base+r*len(d.sites)+q])
			}
		}
	}
	inv := 1.0 / float64(d.shots)
	for r := range frac {
		for q := range frac[r] {
			frac[r][q] *= inv
		}
	}

	return frac
}
