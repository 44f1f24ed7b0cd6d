package schedule

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNilSchedule indicates a nil *Schedule was passed to Validate.
	ErrNilSchedule = errors.New("schedule: schedule is nil")

	// ErrNilLayout indicates a nil layout was passed to Validate.
	ErrNilLayout = errors.New("schedule: layout is nil")

	// ErrBadArity indicates a gate arity outside {1,2}, or an operand
	// group whose size disagrees with the declared arity.
	ErrBadArity = errors.New("schedule: unexpected number of qubits for gate")

	// ErrBadDuration indicates a negative gate duration.
	ErrBadDuration = errors.New("schedule: gate duration is negative")

	// ErrUnknownQubit indicates a gate operand absent from the layout.
	ErrUnknownQubit = errors.New("schedule: qubit not in layout")

	// ErrUncoupledPair indicates a two-qubit gate between qubits the
	// layout does not couple.
	ErrUncoupledPair = errors.New("schedule: qubits not coupled in layout")

	// ErrOverlappingGates indicates a gate starting before a previous
	// operation on one of its qubits has finished.
	ErrOverlappingGates = errors.New("schedule: gate executed before previous operation has finished")

	// ErrBadOperands indicates a qubits entry that is neither a label nor
	// a pair of labels.
	ErrBadOperands = errors.New("schedule: malformed qubit operands")
)

// GateError identifies the gate and operands that failed validation.
// Unwraps to the matching sentinel above.
type GateError struct {
	Label    string
	Qubits   []string
	sentinel error
	reason   string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("schedule: gate %q on %v: %s", e.Label, e.Qubits, e.reason)
}

// Unwrap lets errors.Is match the sentinel class of the violation.
func (e *GateError) Unwrap() error { return e.sentinel }

// Gate is one scheduled operation. Operands holds one group per
// application: single labels for one-qubit gates, (control, target)
// pairs for two-qubit gates.
type Gate struct {
	Label     string
	NumQubits int
	Duration  float64
	Operands  [][]string
}

// Layer groups the gates starting at one time.
type Layer struct {
	TimeStart float64 `yaml:"time_start"`
	Gates     []Gate  `yaml:"gates"`
}

// Schedule is a named, layered gate schedule for one extraction cycle.
type Schedule struct {
	Name        string  `yaml:"name,omitempty"`
	Description string  `yaml:"description,omitempty"`
	CircTime    float64 `yaml:"circ_time,omitempty"`
	Layers      []Layer `yaml:"layers"`
}

// FromYAML decodes a schedule document.
func FromYAML(r io.Reader) (*Schedule, error) {
	var s Schedule
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("schedule: decoding document: %w", err)
	}

	return &s, nil
}

// ToYAML writes the schedule as a document FromYAML can read back.
func (s *Schedule) ToYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("schedule: encoding document: %w", err)
	}

	return enc.Close()
}

// gateYAML is the wire form of Gate: one-qubit gates list bare labels,
// two-qubit gates list pairs.
type gateYAML struct {
	Label     string      `yaml:"label"`
	NumQubits int         `yaml:"num_qubits"`
	Duration  float64     `yaml:"duration,omitempty"`
	Qubits    []yaml.Node `yaml:"qubits"`
}

// UnmarshalYAML normalizes the mixed qubits form into operand groups.
func (g *Gate) UnmarshalYAML(value *yaml.Node) error {
	var raw gateYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}

	g.Label = raw.Label
	g.NumQubits = raw.NumQubits
	g.Duration = raw.Duration
	g.Operands = make([][]string, 0, len(raw.Qubits))
	for i := range raw.Qubits {
		n := &raw.Qubits[i]
		switch n.Kind {
		case yaml.ScalarNode:
			var q string
			if err := n.Decode(&q); err != nil {
				return err
			}
			g.Operands = append(g.Operands, []string{q})
		case yaml.SequenceNode:
			var group []string
			if err := n.Decode(&group); err != nil {
				return err
			}
			g.Operands = append(g.Operands, group)
		default:
			return fmt.Errorf("%w: gate %q", ErrBadOperands, raw.Label)
		}
	}

	return nil
}

// MarshalYAML emits the wire form matching UnmarshalYAML.
func (g Gate) MarshalYAML() (interface{}, error) {
	out := struct {
		Label     string  `yaml:"label"`
		NumQubits int     `yaml:"num_qubits"`
		Duration  float64 `yaml:"duration,omitempty"`
		Qubits    []any   `yaml:"qubits"`
	}{Label: g.Label, NumQubits: g.NumQubits, Duration: g.Duration}

	for _, group := range g.Operands {
		if len(group) == 1 {
			out.Qubits = append(out.Qubits, group[0])
		} else {
			out.Qubits = append(out.Qubits, group)
		}
	}

	return out, nil
}
