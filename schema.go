package variant

import (
	"errors"
	"fmt"
)

// CatchAll is the reserved handler key used in Match/MatchContext to handle
// any alternative not explicitly listed. It is forbidden as an alternative
// name: schemas reject it at declaration time and Union.Build rejects it
// again at construction time.
const CatchAll = "_"

// Schema is the fixed set of alternative names a union declares. Schemas are
// immutable once built and hold no mutable state, so they are safe for
// concurrent use.
//
// A Schema carries no payload types at runtime; payload/alternative
// consistency for the prebuilt specializations is enforced by the generic
// constructors in the option and result subpackages.
type Schema struct {
	names []string
	index map[string]struct{}
}

// NewSchema declares a schema over the given alternative names, preserving
// declaration order. It fails if the list is empty, if any name is empty or
// duplicated, or if any name equals the reserved catch-all name CatchAll.
func NewSchema(alternatives ...string) (*Schema, error) {
	if len(alternatives) == 0 {
		return nil, newSchemaError("NewSchema", errors.New("schema declares no alternatives"))
	}

	s := &Schema{
		names: make([]string, 0, len(alternatives)),
		index: make(map[string]struct{}, len(alternatives)),
	}

	for _, name := range alternatives {
		if name == "" {
			return nil, newSchemaError("NewSchema", errors.New("empty alternative name"))
		}
		if name == CatchAll {
			return nil, newReservedNameError("NewSchema")
		}
		if _, dup := s.index[name]; dup {
			return nil, newSchemaError("NewSchema", fmt.Errorf("duplicate alternative %q", name))
		}
		s.names = append(s.names, name)
		s.index[name] = struct{}{}
	}

	return s, nil
}

// Alternatives returns the declared alternative names in declaration order.
// The returned slice is a copy.
func (s *Schema) Alternatives() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Declares reports whether name is a declared alternative of the schema.
func (s *Schema) Declares(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of declared alternatives.
func (s *Schema) Len() int {
	return len(s.names)
}
