package schedule

import (
	"slices"

	"github.com/qec-tools/qecutil/layout"
)

// Validate runs the structural pass over s against lay: operand
// membership, coupling of two-qubit gates, and per-qubit time ordering.
// The schedule is read-only; nothing is repaired or reordered.
//
// Complexity: O(gates·operands).
func Validate(s *Schedule, lay *layout.Layout) error {
	if s == nil {
		return ErrNilSchedule
	}
	if lay == nil {
		return ErrNilLayout
	}

	qubitTimes := make(map[string]float64, lay.NumQubits())
	for _, q := range lay.Qubits() {
		qubitTimes[q] = 0
	}

	for _, layer := range s.Layers {
		for _, g := range layer.Gates {
			if g.NumQubits != 1 && g.NumQubits != 2 {
				return &GateError{Label: g.Label, sentinel: ErrBadArity,
					reason: "arity must be 1 or 2"}
			}
			if g.Duration < 0 {
				return &GateError{Label: g.Label, sentinel: ErrBadDuration,
					reason: "duration is negative"}
			}

			for _, group := range g.Operands {
				if len(group) != g.NumQubits {
					return &GateError{Label: g.Label, Qubits: group, sentinel: ErrBadArity,
						reason: "operand group size disagrees with declared arity"}
				}
				for _, q := range group {
					if _, ok := qubitTimes[q]; !ok {
						return &GateError{Label: g.Label, Qubits: group, sentinel: ErrUnknownQubit,
							reason: "qubit " + q + " not in layout"}
					}
				}
				if g.NumQubits == 2 {
					nbrs, err := lay.Neighbors(group[0])
					if err != nil {
						return err
					}
					if !slices.Contains(nbrs, group[1]) {
						return &GateError{Label: g.Label, Qubits: group, sentinel: ErrUncoupledPair,
							reason: "qubit " + group[1] + " not coupled to " + group[0]}
					}
				}
				for _, q := range group {
					if qubitTimes[q] > layer.TimeStart {
						return &GateError{Label: g.Label, Qubits: group, sentinel: ErrOverlappingGates,
							reason: "previous operation still running at start time"}
					}
					qubitTimes[q] = layer.TimeStart + g.Duration
				}
			}
		}
	}

	return nil
}

// GateOp is one entry of a Clifford layer: a gate label with its
// flattened operand list.
type GateOp struct {
	Label  string
	Qubits []string
}

// CliffordLayers groups the schedule's gates per layer with idling
// dropped, optionally renaming labels through rename (labels absent from
// the map pass through). The result feeds circuit exporters.
func CliffordLayers(s *Schedule, rename map[string]string) [][]GateOp {
	if s == nil {
		return nil
	}

	layers := make([][]GateOp, 0, len(s.Layers))
	for _, layer := range s.Layers {
		ops := make([]GateOp, 0, len(layer.Gates))
		for _, g := range layer.Gates {
			if g.Label == "idle" {
				continue
			}
			label := g.Label
			if renamed, ok := rename[label]; ok {
				label = renamed
			}
			var flat []string
			for _, group := range g.Operands {
				flat = append(flat, group...)
			}
			ops = append(ops, GateOp{Label: label, Qubits: flat})
		}
		layers = append(layers, ops)
	}

	return layers
}
