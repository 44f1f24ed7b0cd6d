package layout

import "errors"

var (
	// ErrNoQubits indicates an empty qubit list.
	ErrNoQubits = errors.New("layout: at least one qubit is required")

	// ErrUnlabeledQubit indicates a qubit with an empty label.
	ErrUnlabeledQubit = errors.New("layout: every qubit must be labeled")

	// ErrDuplicateQubit indicates two qubits share a label.
	ErrDuplicateQubit = errors.New("layout: duplicate qubit label")

	// ErrBadRole indicates a role other than data or anc.
	ErrBadRole = errors.New("layout: unknown qubit role")

	// ErrBadStabType indicates an ancilla without a valid stabilizer type,
	// or a data qubit carrying one.
	ErrBadStabType = errors.New("layout: invalid stabilizer type for role")

	// ErrBadDirection indicates a neighbor link keyed by an unknown
	// diagonal direction.
	ErrBadDirection = errors.New("layout: unknown neighbor direction")

	// ErrUnknownNeighbor indicates a neighbor link to an unlisted qubit.
	ErrUnknownNeighbor = errors.New("layout: neighbor references unknown qubit")

	// ErrUnknownQubit indicates a query for a label the layout lacks.
	ErrUnknownQubit = errors.New("layout: unknown qubit")

	// ErrBadDistance indicates a surface-code distance that is not an odd
	// positive integer.
	ErrBadDistance = errors.New("layout: distance must be an odd positive integer")
)
