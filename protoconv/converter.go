// Package protoconv converts variant values to and from
// google.protobuf.Struct, so a Value's canonical single-key mapping can be
// embedded in protobuf messages and crossed over RPC boundaries without a
// dedicated wrapper message per union.
package protoconv

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/zero-day-ai/variant"
)

// ToStruct converts a Value's canonical single-key mapping to a
// google.protobuf.Struct. The Unit marker for payload-less alternatives is
// mapped to the proto null value. Payloads must be Struct-representable
// (nil, bool, numbers, strings, []byte, []any, map[string]any); anything
// else fails with a wrapped structpb error.
func ToStruct(v *variant.Value) (*structpb.Struct, error) {
	if v == nil {
		return nil, fmt.Errorf("protoconv: nil variant value")
	}

	unwrapped := v.Unwrap()
	for key, payload := range unwrapped {
		if _, unit := payload.(variant.Unit); unit {
			unwrapped[key] = nil
		}
	}

	s, err := structpb.NewStruct(unwrapped)
	if err != nil {
		return nil, fmt.Errorf("protoconv: alternative %q payload is not struct-representable: %w", v.Key(), err)
	}
	return s, nil
}

// FromStruct reconstructs a Value from a Struct produced by ToStruct,
// parsing it against the given union. Proto null payloads become the Unit
// marker. All the parse-time errors of variant.Union.Parse apply: wrong key
// cardinality, the reserved catch-all key, and undeclared alternatives.
//
// Struct decoding widens integer payloads to float64 (proto Struct has a
// single number kind), the same widening JSON decoding performs.
func FromStruct(u *variant.Union, s *structpb.Struct) (*variant.Value, error) {
	if u == nil {
		return nil, fmt.Errorf("protoconv: nil union")
	}
	if s == nil {
		return nil, fmt.Errorf("protoconv: nil struct")
	}
	return u.Parse(s.AsMap())
}
