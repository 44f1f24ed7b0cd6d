package layout

import "fmt"

// Role distinguishes data qubits from syndrome-measuring ancillas.
type Role string

const (
	RoleData Role = "data"
	RoleAnc  Role = "anc"
)

// StabType is the stabilizer type an ancilla measures.
type StabType string

const (
	StabX StabType = "x_type"
	StabZ StabType = "z_type"
)

// Direction keys a diagonal neighbor link on the square grid.
type Direction string

const (
	NorthEast Direction = "north_east"
	NorthWest Direction = "north_west"
	SouthEast Direction = "south_east"
	SouthWest Direction = "south_west"
)

// directionOrder fixes the iteration order of neighbor links everywhere a
// deterministic sequence is needed.
var directionOrder = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// Qubit describes one lattice site of the code.
type Qubit struct {
	// Label uniquely identifies the qubit (e.g. "D1", "X2", "Z3").
	Label string `yaml:"qubit"`

	// Role is data or anc.
	Role Role `yaml:"role"`

	// StabType is set for ancillas only.
	StabType StabType `yaml:"stab_type,omitempty"`

	// FreqGroup is the frequency-allocation group; informational.
	FreqGroup string `yaml:"freq_group,omitempty"`

	// Coords is the (row, col) grid position; informational.
	Coords []int `yaml:"coords,flow,omitempty"`

	// Neighbors links diagonal directions to neighboring qubit labels.
	// Absent directions are simply omitted.
	Neighbors map[Direction]string `yaml:"neighbors,omitempty"`
}

// Layout is an immutable, validated qubit connectivity model. The qubit
// order passed to New is the canonical index order.
type Layout struct {
	name     string
	distance int
	order    []string
	index    map[string]int
	qubits   map[string]Qubit
}

// New validates the qubit list and builds a Layout. Labels must be unique
// and non-empty, roles and stabilizer types consistent, and every
// neighbor link must resolve to a listed qubit.
func New(name string, distance int, qubits []Qubit) (*Layout, error) {
	if len(qubits) == 0 {
		return nil, ErrNoQubits
	}

	l := &Layout{
		name:     name,
		distance: distance,
		order:    make([]string, 0, len(qubits)),
		index:    make(map[string]int, len(qubits)),
		qubits:   make(map[string]Qubit, len(qubits)),
	}
	for i, q := range qubits {
		if q.Label == "" {
			return nil, fmt.Errorf("%w: position %d", ErrUnlabeledQubit, i)
		}
		if _, seen := l.index[q.Label]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateQubit, q.Label)
		}
		switch q.Role {
		case RoleData:
			if q.StabType != "" {
				return nil, fmt.Errorf("%w: data qubit %q carries %q", ErrBadStabType, q.Label, q.StabType)
			}
		case RoleAnc:
			if q.StabType != StabX && q.StabType != StabZ {
				return nil, fmt.Errorf("%w: ancilla %q has %q", ErrBadStabType, q.Label, q.StabType)
			}
		default:
			return nil, fmt.Errorf("%w: qubit %q role %q", ErrBadRole, q.Label, q.Role)
		}

		l.index[q.Label] = i
		l.order = append(l.order, q.Label)
		l.qubits[q.Label] = copyQubit(q)
	}

	// Neighbor links resolve only after all labels are known.
	for _, label := range l.order {
		for dir, nbr := range l.qubits[label].Neighbors {
			if !validDirection(dir) {
				return nil, fmt.Errorf("%w: qubit %q direction %q", ErrBadDirection, label, dir)
			}
			if nbr == "" {
				continue
			}
			if _, ok := l.index[nbr]; !ok {
				return nil, fmt.Errorf("%w: qubit %q -> %q", ErrUnknownNeighbor, label, nbr)
			}
		}
	}

	return l, nil
}

// Name returns the layout's display name.
func (l *Layout) Name() string { return l.name }

// Distance returns the code distance, or 0 when unspecified.
func (l *Layout) Distance() int { return l.distance }

// NumQubits reports the total qubit count.
func (l *Layout) NumQubits() int { return len(l.order) }

// Filter narrows qubit queries; all filters must match.
type Filter func(Qubit) bool

// WithRole keeps qubits of the given role.
func WithRole(r Role) Filter { return func(q Qubit) bool { return q.Role == r } }

// WithStabType keeps qubits measuring the given stabilizer type.
func WithStabType(st StabType) Filter { return func(q Qubit) bool { return q.StabType == st } }

// WithFreqGroup keeps qubits of the given frequency group.
func WithFreqGroup(g string) Filter { return func(q Qubit) bool { return q.FreqGroup == g } }

// Qubits returns the labels matching every filter, in canonical order.
func (l *Layout) Qubits(filters ...Filter) []string {
	labels := make([]string, 0, len(l.order))
	for _, label := range l.order {
		if matches(l.qubits[label], filters) {
			labels = append(labels, label)
		}
	}

	return labels
}

// QubitInfo returns a deep copy of one qubit's record.
func (l *Layout) QubitInfo(label string) (Qubit, error) {
	q, ok := l.qubits[label]
	if !ok {
		return Qubit{}, fmt.Errorf("%w: %q", ErrUnknownQubit, label)
	}

	return copyQubit(q), nil
}

// Index resolves a label to its canonical position.
func (l *Layout) Index(label string) (int, error) {
	i, ok := l.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownQubit, label)
	}

	return i, nil
}

// Neighbors returns the linked qubits of label matching every filter, in
// fixed direction order (NE, NW, SE, SW).
func (l *Layout) Neighbors(label string, filters ...Filter) ([]string, error) {
	q, ok := l.qubits[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQubit, label)
	}

	nbrs := make([]string, 0, len(q.Neighbors))
	for _, dir := range directionOrder {
		nbr, ok := q.Neighbors[dir]
		if !ok || nbr == "" {
			continue
		}
		if matches(l.qubits[nbr], filters) {
			nbrs = append(nbrs, nbr)
		}
	}

	return nbrs, nil
}

// AdjacencyMatrix returns the dense 0/1 connectivity in canonical qubit
// order: entry (i,j) is 1 when qubit i links to qubit j.
func (l *Layout) AdjacencyMatrix() [][]int {
	n := len(l.order)
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	for _, label := range l.order {
		i := l.index[label]
		for _, nbr := range l.qubits[label].Neighbors {
			if nbr != "" {
				adj[i][l.index[nbr]] = 1
			}
		}
	}

	return adj
}

// ProjectionPairs maps each ancilla of the given stabilizer type to its
// data-qubit neighbors. Downstream, this projects a final data-qubit
// measurement onto the syndrome of that stabilizer type.
func (l *Layout) ProjectionPairs(st StabType) map[string][]string {
	proj := make(map[string][]string)
	for _, anc := range l.Qubits(WithRole(RoleAnc), WithStabType(st)) {
		data, _ := l.Neighbors(anc, WithRole(RoleData))
		proj[anc] = data
	}

	return proj
}

// matches reports whether q satisfies every filter.
func matches(q Qubit, filters []Filter) bool {
	for _, f := range filters {
		if !f(q) {
			return false
		}
	}

	return true
}

// validDirection reports membership in the four diagonal directions.
func validDirection(d Direction) bool {
	for _, dir := range directionOrder {
		if d == dir {
			return true
		}
	}

	return false
}

// copyQubit deep-copies the mutable fields so the layout stays immutable.
func copyQubit(q Qubit) Qubit {
	if q.Coords != nil {
		q.Coords = append([]int(nil), q.Coords...)
	}
	if q.Neighbors != nil {
		nbrs := make(map[Direction]string, len(q.Neighbors))
		for d, n := range q.Neighbors {
			nbrs[d] = n
		}
		q.Neighbors = nbrs
	}

	return q
}
