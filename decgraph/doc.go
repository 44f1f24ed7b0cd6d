// Package decgraph builds and validates the weighted decoding graph that a
// matching-based QEC decoder consumes.
//
// 🚀 What is a decoding graph?
//
//	Nodes are detector-sites (plus one virtual boundary node); each edge is
//	a candidate error mechanism annotated with a traversal cost derived
//	from the mechanism's probability. Minimum-weight matching over this
//	graph approximates the most likely physical error pattern.
//
// ✨ Construction rules:
//   - Bulk mechanisms (two sites) become an edge between the sites they
//     would flip; the sites must be adjacent in the code layout.
//   - Boundary mechanisms (one site) connect that site to the virtual
//     boundary node.
//   - Parallel mechanisms on the same node pair merge as independent
//     channels: p = p1·(1−p2) + p2·(1−p1). No multi-edges survive.
//   - Weight = −ln(p/(1−p)) by default (log-odds); swap to plain −ln(p)
//     with WithWeightTransform(NegLog). Lower probability ⇒ higher cost.
//   - Zero-probability mechanisms are dropped: they contribute no edge.
//
// Validate runs the read-only invariant pass required before the graph is
// handed to an external decoder: finite non-negative weights, no isolated
// detector nodes, and boundary-edge parity matching the code's
// logical-operator structure. It reports, never repairs.
//
// ⚙️ Usage:
//
//	model := []decgraph.Mechanism{
//	  decgraph.NewBulkMechanism("m1", "A", "B", 0.01),
//	  decgraph.NewBoundaryMechanism("m2", "A", 0.02),
//	}
//	g, err := decgraph.Build(lay, model)
//	report, err := decgraph.Validate(g, decgraph.ParityEven)
//
// Complexity: Build O(M + S·deg) for M mechanisms over S sites;
// Validate O(S + E).
package decgraph
