package decgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and validation. Context-carrying
// typed errors unwrap to these, so callers match with errors.Is and
// recover coordinates with errors.As.
var (
	// ErrNilLayout indicates a nil site layout was passed to Build.
	ErrNilLayout = errors.New("decgraph: layout is nil")

	// ErrEmptyLayout indicates the layout exposes no detector-sites.
	ErrEmptyLayout = errors.New("decgraph: layout has no sites")

	// ErrDuplicateSite indicates the layout lists a site label twice.
	ErrDuplicateSite = errors.New("decgraph: duplicate site in layout")

	// ErrBoundaryCollision indicates the boundary node id is also a site.
	ErrBoundaryCollision = errors.New("decgraph: boundary id collides with a site")

	// ErrInvalidProbability indicates a mechanism probability outside [0,1].
	ErrInvalidProbability = errors.New("decgraph: mechanism probability outside [0,1]")

	// ErrDisconnectedMechanism indicates a mechanism references a site that
	// is absent from the layout, or couples two sites the layout does not
	// make adjacent.
	ErrDisconnectedMechanism = errors.New("decgraph: mechanism disconnected from layout")

	// ErrUnknownTransform indicates an unrecognized weight transform option.
	ErrUnknownTransform = errors.New("decgraph: unknown weight transform")

	// ErrEmptyBoundaryID indicates WithBoundaryID was given an empty label.
	ErrEmptyBoundaryID = errors.New("decgraph: boundary id is empty")

	// ErrNilGraph indicates a nil *Graph was passed to Validate.
	ErrNilGraph = errors.New("decgraph: graph is nil")

	// ErrNegativeWeight indicates an edge weight that is negative, NaN, or
	// non-finite. Validation check (1).
	ErrNegativeWeight = errors.New("decgraph: edge weight negative or not finite")

	// ErrIsolatedNode indicates a non-boundary detector node of degree zero.
	// Validation check (2).
	ErrIsolatedNode = errors.New("decgraph: isolated detector node")

	// ErrParityMismatch indicates the boundary-edge count parity does not
	// match the code's logical-operator structure. Validation check (3).
	ErrParityMismatch = errors.New("decgraph: boundary parity mismatch")
)

// MechanismError identifies the error mechanism that failed construction
// validation. Site is empty when the violation is probability-only.
// Unwraps to ErrInvalidProbability or ErrDisconnectedMechanism.
type MechanismError struct {
	MechanismID string
	Site        string
	Prob        float64
	sentinel    error
	reason      string
}

func (e *MechanismError) Error() string {
	if e.Site == "" {
		return fmt.Sprintf("decgraph: mechanism %q: %s (p=%g)", e.MechanismID, e.reason, e.Prob)
	}

	return fmt.Sprintf("decgraph: mechanism %q at site %q: %s", e.MechanismID, e.Site, e.reason)
}

// Unwrap lets errors.Is match the sentinel class of the violation.
func (e *MechanismError) Unwrap() error { return e.sentinel }

// WeightError identifies the edge whose weight failed validation.
// Unwraps to ErrNegativeWeight.
type WeightError struct {
	A, B   string
	Weight float64
}

func (e *WeightError) Error() string {
	return fmt.Sprintf("decgraph: edge %q-%q has invalid weight %g", e.A, e.B, e.Weight)
}

// Unwrap lets errors.Is(err, ErrNegativeWeight) match a *WeightError.
func (e *WeightError) Unwrap() error { return ErrNegativeWeight }
