// Package layout models the qubit connectivity of a QEC code: data and
// ancilla qubits on a square grid, linked diagonally, with the metadata a
// syndrome-analysis pipeline needs (roles, stabilizer types, coordinates,
// frequency groups).
//
// A Layout is immutable after construction and keeps a fixed qubit order,
// so every matrix or site list derived from it is deterministic.
//
// ✨ Features:
//   - validated construction from an explicit qubit list (New) or a YAML
//     setup document (FromYAML / ToYAML round-trip)
//   - filtered queries: Qubits(WithRole(RoleAnc), WithStabType(StabZ))
//   - adjacency and data→ancilla projection views
//   - SyndromeSublattice — the detector layout of one stabilizer type,
//     ready to feed the decoding-graph builder (two ancillas are adjacent
//     when they share a data-qubit neighbor)
//   - SurfaceCode — generator for rotated surface-code layouts of odd
//     distance d: d² data qubits, d²−1 ancillas
//
// ⚙️ Usage:
//
//	lay, err := layout.SurfaceCode(3)
//	ancs := lay.Qubits(layout.WithRole(layout.RoleAnc))
//	sub := lay.SyndromeSublattice(layout.StabX)
//	g, err := decgraph.Build(sub, model)
package layout
