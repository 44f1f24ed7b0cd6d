// Package schedule models a layered gate schedule — the timing blueprint
// of one syndrome-extraction cycle — and statically validates it against a
// qubit layout before any circuit is generated from it.
//
// A Schedule is a sequence of layers; each layer starts at a fixed time
// and applies one- and two-qubit gates. Validation is purely structural
// (no simulation):
//   - every operand must exist in the layout
//   - two-qubit gates may only couple layout neighbors
//   - a gate may not start before its qubits' previous gate has finished
//
// CliffordLayers exposes the per-layer gate grouping (idling dropped,
// labels optionally renamed) that circuit exporters consume.
//
// ⚙️ Usage:
//
//	s, err := schedule.FromYAML(r)
//	if err := schedule.Validate(s, lay); err != nil { ... }
//	layers := schedule.CliffordLayers(s, map[string]string{"cz": "CZ"})
package schedule
