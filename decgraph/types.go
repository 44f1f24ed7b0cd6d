package decgraph

// SiteLayout is the code-description contract Build consumes: the detector
// adjacency implied by the stabilizer structure. Implementations must
// expose a stable site order; adjacency is treated as undirected (a link
// listed in either direction couples the pair).
//
// layout.SyndromeLayout satisfies this interface, as does any externally
// supplied mapping.
type SiteLayout interface {
	// Sites returns the detector-site labels in their canonical order.
	Sites() []string

	// AdjacentSites returns the sites geometrically or temporally adjacent
	// to site. Unknown sites return nil.
	AdjacentSites(site string) []string
}

// MechanismKind tags the variant of an error mechanism. The kind is
// explicit and resolved at build time; Build never inspects dynamic shape.
type MechanismKind int

const (
	// BoundaryKind marks a mechanism flipping exactly one detector-site;
	// its edge connects the site to the virtual boundary node.
	BoundaryKind MechanismKind = iota

	// BulkKind marks a mechanism flipping exactly two detector-sites.
	BulkKind
)

// Mechanism is one candidate error channel of the externally calibrated
// error model. SiteB is meaningful only for BulkKind.
type Mechanism struct {
	// ID identifies the mechanism in error reports and edge provenance.
	ID string

	// Kind selects the variant: boundary (one site) or bulk (two sites).
	Kind MechanismKind

	// SiteA is the first (or only) detector-site the mechanism flips.
	SiteA string

	// SiteB is the second flipped detector-site; empty for BoundaryKind.
	SiteB string

	// Prob is the calibrated probability of the mechanism firing, in [0,1].
	Prob float64
}

// NewBoundaryMechanism builds a single-site mechanism that connects site
// to the virtual boundary node.
func NewBoundaryMechanism(id, site string, p float64) Mechanism {
	return Mechanism{ID: id, Kind: BoundaryKind, SiteA: site, Prob: p}
}

// NewBulkMechanism builds a two-site mechanism coupling a and b.
func NewBulkMechanism(id, a, b string, p float64) Mechanism {
	return Mechanism{ID: id, Kind: BulkKind, SiteA: a, SiteB: b, Prob: p}
}

// Edge is one weighted decoding-graph edge. B equals the boundary id for
// edges produced by boundary mechanisms.
type Edge struct {
	// A and B are the endpoint labels, ordered by node index (boundary last).
	A, B string

	// Weight is the traversal cost: transform(Prob), always the configured
	// monotone decreasing function of the merged probability.
	Weight float64

	// Prob is the merged probability of all mechanisms on this node pair.
	Prob float64

	// Mechanisms lists the contributing mechanism IDs in input order.
	Mechanisms []string
}

// Graph is the immutable decoding graph produced by Build. It is built
// fresh per experiment configuration and never mutated after validation.
type Graph struct {
	nodes    []string // sites in layout order, boundary last
	boundary string
	edges    []Edge         // deterministic order: ascending (A,B) node index
	degree   map[string]int // incident edge count per node
}

// Nodes returns a copy of every node label, sites first in layout order,
// the boundary node last.
func (g *Graph) Nodes() []string { return append([]string(nil), g.nodes...) }

// NumNodes reports the node count, boundary included.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Edges returns a copy of the edge list in deterministic build order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	for i := range edges {
		edges[i].Mechanisms = append([]string(nil), g.edges[i].Mechanisms...)
	}

	return edges
}

// NumEdges reports the edge count after parallel-mechanism merging.
func (g *Graph) NumEdges() int { return len(g.edges) }

// BoundaryID returns the label of the virtual boundary node.
func (g *Graph) BoundaryID() string { return g.boundary }

// Degree reports the number of edges incident to node; unknown labels
// report zero.
func (g *Graph) Degree(node string) int { return g.degree[node] }

// Export exposes the minimal contract an external matching decoder needs:
// node set, weighted edge list, and the boundary designation. All slices
// are copies.
func (g *Graph) Export() (nodes []string, edges []Edge, boundary string) {
	return g.Nodes(), g.Edges(), g.boundary
}
