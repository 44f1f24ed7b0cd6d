package layout

import "fmt"

// SyndromeLayout is the detector sublattice of one stabilizer type: the
// ancillas measuring it, with two ancillas adjacent when they share a
// data-qubit neighbor (one data-qubit error flips both). It satisfies the
// decoding-graph builder's site-layout contract.
type SyndromeLayout struct {
	stabType StabType
	sites    []string
	adj      map[string][]string
}

// SyndromeSublattice derives the detector layout of the given stabilizer
// type. Site order follows the layout's canonical qubit order; adjacency
// lists are ordered the same way.
//
// Complexity: O(A²·deg) over A ancillas of the type.
func (l *Layout) SyndromeSublattice(st StabType) (*SyndromeLayout, error) {
	if st != StabX && st != StabZ {
		return nil, fmt.Errorf("%w: %q", ErrBadStabType, st)
	}

	ancs := l.Qubits(WithRole(RoleAnc), WithStabType(st))
	support := make(map[string]map[string]bool, len(ancs))
	for _, anc := range ancs {
		data, _ := l.Neighbors(anc, WithRole(RoleData))
		set := make(map[string]bool, len(data))
		for _, d := range data {
			set[d] = true
		}
		support[anc] = set
	}

	adj := make(map[string][]string, len(ancs))
	for i, a := range ancs {
		for j, b := range ancs {
			if i == j {
				continue
			}
			if sharesData(support[a], support[b]) {
				adj[a] = append(adj[a], b)
			}
		}
	}

	return &SyndromeLayout{stabType: st, sites: ancs, adj: adj}, nil
}

// StabType reports which stabilizer type the sublattice detects.
func (s *SyndromeLayout) StabType() StabType { return s.stabType }

// Sites returns the detector-site labels in canonical order.
func (s *SyndromeLayout) Sites() []string { return append([]string(nil), s.sites...) }

// AdjacentSites returns the detectors sharing a data qubit with site.
func (s *SyndromeLayout) AdjacentSites(site string) []string {
	return append([]string(nil), s.adj[site]...)
}

// sharesData reports whether two support sets intersect.
func sharesData(a, b map[string]bool) bool {
	for d := range a {
		if b[d] {
			return true
		}
	}

	return false
}
