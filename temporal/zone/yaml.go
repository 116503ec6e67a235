package zone

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aparo/temporal/temporal/types"
)

// ruleDoc is the YAML shape of a zone rule document:
//
//	zones:
//	  - id: America/New_York
//	    name: EST
//	    offset: "-05:00"
//	    standard: "-05:00"
//	    transitions:
//	      - at: 1710054000000
//	        offset: "-04:00"
//	        standard: "-05:00"
//	        name: EDT
//
// Offsets are canonical [+-]hh:mm[:ss[.SSS]] identifiers; "at" is a UTC
// instant in milliseconds since the epoch. The top entry describes the
// state before the first transition.
type ruleDoc struct {
	Zones []zoneDoc `yaml:"zones"`
}

type zoneDoc struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Offset      string          `yaml:"offset"`
	Standard    string          `yaml:"standard"`
	Transitions []transitionDoc `yaml:"transitions"`
}

type transitionDoc struct {
	At       int64  `yaml:"at"`
	Offset   string `yaml:"offset"`
	Standard string `yaml:"standard"`
	Name     string `yaml:"name"`
}

// LoadRules reads a YAML rule document and returns a Provider serving the
// zones it defines, plus UTC. Loading is a startup cost; the zones served
// never touch the document again.
func LoadRules(r io.Reader) (*MapProvider, error) {
	var doc ruleDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decoding rules: %w", ErrZone, err)
	}
	zones := make([]Zone, 0, len(doc.Zones))
	for _, zd := range doc.Zones {
		z, err := zd.build()
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return NewMapProvider(zones...)
}

func (zd zoneDoc) build() (Zone, error) {
	offset, standard, err := parseOffsets(zd.ID, zd.Offset, zd.Standard)
	if err != nil {
		return nil, err
	}
	b := NewBuilder(zd.ID, offset, standard, zd.Name)
	for _, td := range zd.Transitions {
		offset, standard, err = parseOffsets(zd.ID, td.Offset, td.Standard)
		if err != nil {
			return nil, err
		}
		b.Transition(td.At, offset, standard, td.Name)
	}
	return b.Build()
}

// parseOffsets parses an offset pair, defaulting an absent standard offset
// to the wall offset.
func parseOffsets(id, offset, standard string) (int, int, error) {
	o, err := types.ParseOffset(offset)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: zone %s: %w", ErrZone, id, err)
	}
	s := o
	if standard != "" {
		if s, err = types.ParseOffset(standard); err != nil {
			return 0, 0, fmt.Errorf("%w: zone %s: %w", ErrZone, id, err)
		}
	}
	return o, s, nil
}
