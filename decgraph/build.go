package decgraph

import (
	"fmt"
	"math"
	"sort"
)

// Build constructs the decoding graph from the code layout and the
// externally calibrated error model.
//
// Every mechanism becomes (part of) one edge: bulk mechanisms couple the
// two adjacent sites they flip, boundary mechanisms couple their site to
// the virtual boundary node. Parallel mechanisms on the same node pair are
// merged as independent channels before weighting; zero-probability
// mechanisms are dropped (a channel that never fires is no channel).
//
// Errors: ErrNilLayout, ErrEmptyLayout, ErrDuplicateSite,
// ErrBoundaryCollision, ErrUnknownTransform, ErrEmptyBoundaryID, and
// *MechanismError unwrapping to ErrInvalidProbability or
// ErrDisconnectedMechanism.
//
// Complexity: O(S·deg) to index adjacency, O(M) per mechanism, O(E log E)
// for the deterministic edge ordering.
func Build(lay SiteLayout, model []Mechanism, opts ...Option) (*Graph, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if lay == nil {
		return nil, ErrNilLayout
	}

	sites := lay.Sites()
	if len(sites) == 0 {
		return nil, ErrEmptyLayout
	}
	index := make(map[string]int, len(sites))
	for i, s := range sites {
		if _, seen := index[s]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSite, s)
		}
		index[s] = i
	}
	if _, collides := index[o.boundary]; collides {
		return nil, fmt.Errorf("%w: %q", ErrBoundaryCollision, o.boundary)
	}
	boundaryInd := len(sites)

	// Symmetrized adjacency: a link listed in either direction couples the pair.
	adjacent := make(map[[2]int]bool)
	for _, s := range sites {
		si := index[s]
		for _, n := range lay.AdjacentSites(s) {
			ni, ok := index[n]
			if !ok {
				continue // layout self-consistency is the layout package's concern
			}
			adjacent[pairKey(si, ni)] = true
		}
	}

	type channel struct {
		prob  float64
		mechs []string
	}
	merged := make(map[[2]int]*channel)

	for _, m := range model {
		if math.IsNaN(m.Prob) || m.Prob < 0 || m.Prob > 1 {
			return nil, &MechanismError{
				MechanismID: m.ID,
				Prob:        m.Prob,
				sentinel:    ErrInvalidProbability,
				reason:      "probability outside [0,1]",
			}
		}

		var key [2]int
		switch m.Kind {
		case BoundaryKind:
			ai, ok := index[m.SiteA]
			if !ok {
				return nil, disconnected(m, m.SiteA, "site not in layout")
			}
			key = pairKey(ai, boundaryInd)

		case BulkKind:
			ai, ok := index[m.SiteA]
			if !ok {
				return nil, disconnected(m, m.SiteA, "site not in layout")
			}
			bi, ok := index[m.SiteB]
			if !ok {
				return nil, disconnected(m, m.SiteB, "site not in layout")
			}
			if ai == bi {
				return nil, disconnected(m, m.SiteA, "bulk mechanism couples a site to itself")
			}
			if !adjacent[pairKey(ai, bi)] {
				return nil, disconnected(m, m.SiteB, fmt.Sprintf("sites %q and %q are not adjacent", m.SiteA, m.SiteB))
			}
			key = pairKey(ai, bi)

		default:
			return nil, disconnected(m, m.SiteA, fmt.Sprintf("unknown mechanism kind %d", m.Kind))
		}

		if m.Prob == 0 {
			continue
		}
		if ch, ok := merged[key]; ok {
			// Independent two-channel merge: exactly one of the two fires.
			ch.prob = ch.prob*(1-m.Prob) + m.Prob*(1-ch.prob)
			ch.mechs = append(ch.mechs, m.ID)
		} else {
			merged[key] = &channel{prob: m.Prob, mechs: []string{m.ID}}
		}
	}

	nodes := append(append(make([]string, 0, len(sites)+1), sites...), o.boundary)

	keys := make([][2]int, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}

		return keys[i][1] < keys[j][1]
	})

	degree := make(map[string]int, len(nodes))
	edges := make([]Edge, 0, len(keys))
	for _, k := range keys {
		ch := merged[k]
		a, b := nodes[k[0]], nodes[k[1]]
		edges = append(edges, Edge{
			A:          a,
			B:          b,
			Weight:     o.transform.apply(ch.prob),
			Prob:       ch.prob,
			Mechanisms: ch.mechs,
		})
		degree[a]++
		degree[b]++
	}

	return &Graph{
		nodes:    nodes,
		boundary: o.boundary,
		edges:    edges,
		degree:   degree,
	}, nil
}

// MergeProbabilities combines two independent error channels into the
// probability that exactly one fires. Exported because calibration
// collaborators pre-merge mechanism lists with the same convention.
func MergeProbabilities(p1, p2 float64) float64 {
	return p1*(1-p2) + p2*(1-p1)
}

// apply maps a merged probability to an edge weight.
func (t WeightTransform) apply(p float64) float64 {
	switch t {
	case NegLog:
		return -math.Log(p)
	default:
		return -math.Log(p / (1 - p))
	}
}

// pairKey orders a node index pair ascending so undirected lookups and
// merges share one key.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

// disconnected wraps a layout-membership violation for mechanism m.
func disconnected(m Mechanism, site, reason string) error {
	return &MechanismError{
		MechanismID: m.ID,
		Site:        site,
		Prob:        m.Prob,
		sentinel:    ErrDisconnectedMechanism,
		reason:      reason,
	}
}
