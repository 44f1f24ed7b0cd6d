package decgraph

import (
	"fmt"
	"math"
)

// BoundaryParity is the parity the code's logical-operator structure
// requires of the boundary-incident edge count. Supplied by the external
// code description alongside the layout.
type BoundaryParity int

const (
	// ParityEven requires an even number of boundary-connected edges.
	ParityEven BoundaryParity = iota

	// ParityOdd requires an odd number of boundary-connected edges.
	ParityOdd
)

// Report summarizes a successfully validated graph. It feeds downstream
// sanity display only; nothing in the pipeline branches on it.
type Report struct {
	// Nodes is the node count, boundary included.
	Nodes int

	// Edges is the edge count after merging.
	Edges int

	// BoundaryEdges is the number of edges incident to the boundary node.
	BoundaryEdges int

	// MinWeight and MaxWeight bound the edge weights.
	MinWeight, MaxWeight float64
}

// Validate runs the read-only invariant pass over g, in order:
//
//  1. every edge weight finite and non-negative — *WeightError,
//     unwrapping to ErrNegativeWeight;
//  2. every non-boundary node incident to at least one edge —
//     ErrIsolatedNode wrapped with the node label;
//  3. boundary-edge count parity matches parity — ErrParityMismatch.
//
// Validate never repairs the graph. On success it returns the Report.
//
// Complexity: O(S + E).
func Validate(g *Graph, parity BoundaryParity) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// (1) weight sanity.
	minW, maxW := math.Inf(1), math.Inf(-1)
	boundaryEdges := 0
	for i := range g.edges {
		e := &g.edges[i]
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
			return nil, &WeightError{A: e.A, B: e.B, Weight: e.Weight}
		}
		minW = math.Min(minW, e.Weight)
		maxW = math.Max(maxW, e.Weight)
		if e.A == g.boundary || e.B == g.boundary {
			boundaryEdges++
		}
	}
	if len(g.edges) == 0 {
		minW, maxW = 0, 0
	}

	// (2) no isolated detector nodes.
	for _, n := range g.nodes {
		if n == g.boundary {
			continue
		}
		if g.degree[n] == 0 {
			return nil, fmt.Errorf("%w: %q", ErrIsolatedNode, n)
		}
	}

	// (3) boundary parity against the logical-operator structure.
	if BoundaryParity(boundaryEdges%2) != parity {
		return nil, fmt.Errorf("%w: %d boundary edges, required parity %s",
			ErrParityMismatch, boundaryEdges, parity)
	}

	return &Report{
		Nodes:         len(g.nodes),
		Edges:         len(g.edges),
		BoundaryEdges: boundaryEdges,
		MinWeight:     minW,
		MaxWeight:     maxW,
	}, nil
}

// String implements fmt.Stringer for error messages and sanity display.
func (p BoundaryParity) String() string {
	if p == ParityOdd {
		return "odd"
	}

	return "even"
}
