package layout

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML setup schema: top-level layout metadata plus the
// qubit list. File handling stays with the caller; this package only
// consumes and produces streams.
type document struct {
	Name     string  `yaml:"name,omitempty"`
	Distance int     `yaml:"distance,omitempty"`
	Layout   []Qubit `yaml:"layout"`
}

// FromYAML decodes a layout setup document and validates it via New.
func FromYAML(r io.Reader) (*Layout, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("layout: decoding setup document: %w", err)
	}

	return New(doc.Name, doc.Distance, doc.Layout)
}

// ToYAML writes the layout as a setup document, qubits in canonical
// order, suitable for FromYAML round-trips.
func (l *Layout) ToYAML(w io.Writer) error {
	doc := document{
		Name:     l.name,
		Distance: l.distance,
		Layout:   make([]Qubit, 0, len(l.order)),
	}
	for _, label := range l.order {
		doc.Layout = append(doc.Layout, copyQubit(l.qubits[label]))
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("layout: encoding setup document: %w", err)
	}

	return enc.Close()
}
