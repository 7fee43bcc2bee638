package variant

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Unit is the explicit payload marker for alternatives that carry no data
// (e.g. Option's None). Storing an explicit marker instead of omitting the
// payload keeps the canonical single-key mapping round-trippable: Unit
// serializes as null in JSON, YAML, and protobuf Struct form, and a null
// payload parses back to Unit.
type Unit struct{}

// MarshalJSON serializes the unit marker as JSON null.
func (Unit) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalYAML serializes the unit marker as a YAML null node.
func (Unit) MarshalYAML() (any, error) {
	return nil, nil
}

// Value is an immutable runtime value holding exactly one alternative of a
// union and that alternative's payload. Values are created by a Union's
// constructors or by Parse and are never mutated afterward; "changing the
// variant" means constructing a new Value. A Value keeps no reference to the
// Union that built it.
//
// Because Values are immutable they are safe to share across goroutines
// without synchronization.
//
// The zero Value holds no alternative and is invalid; always obtain Values
// from a Union or one of the prebuilt specializations.
type Value struct {
	key     string
	payload any
}

// newValue builds a Value, normalizing a nil payload to the Unit marker so
// the alternative/payload invariant holds for payload-less alternatives.
func newValue(key string, payload any) *Value {
	return &Value{key: key, payload: normalizePayload(payload)}
}

// normalizePayload maps nil to the explicit unit marker. All other payloads
// are stored as given.
func normalizePayload(payload any) any {
	if payload == nil {
		return Unit{}
	}
	return payload
}

// Key returns the name of the held alternative. It is pure and total.
func (v *Value) Key() string {
	return v.key
}

// Payload returns the held alternative's payload. Alternatives without data
// yield the Unit marker. See PayloadAs for typed extraction.
func (v *Value) Payload() any {
	return v.payload
}

// Unwrap projects the Value to its canonical single-key mapping form
// {alternative: payload}. This is the serialization shape consumed by
// Union.Parse; parsing an unwrapped Value yields an observably equal Value.
// A fresh map is returned on every call.
func (v *Value) Unwrap() map[string]any {
	return map[string]any{v.key: v.payload}
}

// Is reports whether the Value holds the named alternative. It is the
// predicate form of If.
func (v *Value) Is(name string) bool {
	return v.key == name
}

// IsNot reports whether the Value holds any alternative other than name.
func (v *Value) IsNot(name string) bool {
	return v.key != name
}

// BranchFunc is a callback for the matching branch of If. It receives the
// held payload (the Unit marker for payload-less alternatives). A nil return
// keeps If's boolean default; any other return value is passed through.
type BranchFunc func(payload any) any

// ElseFunc is a callback for the non-matching branch of If and for both
// branches of IfNot. It receives the whole unwrapped mapping, since a "not
// this alternative" branch cannot know the actual payload's shape. The nil
// return convention matches BranchFunc.
type ElseFunc func(unwrapped map[string]any) any

// If branches on whether the Value holds the named alternative.
//
// With both callbacks nil it is a plain predicate, returning true or false
// like Is. When the alternative matches and onMatch is non-nil, onMatch runs
// with the payload; when it does not match and onElse is non-nil, onElse
// runs with the unwrapped mapping. A callback's non-nil return value is
// returned verbatim; a nil return falls back to the boolean for its branch
// (true for the match branch, false for the else branch), so the same call
// works as a predicate and as a side-effecting branch. At most one callback
// runs per call.
func (v *Value) If(name string, onMatch BranchFunc, onElse ElseFunc) any {
	if v.key == name {
		if onMatch != nil {
			if out := onMatch(v.payload); out != nil {
				return out
			}
		}
		return true
	}
	if onElse != nil {
		if out := onElse(v.Unwrap()); out != nil {
			return out
		}
	}
	return false
}

// IfNot is the logical complement of If: the first callback runs when the
// Value does not hold the named alternative, the second when it does. Both
// callbacks receive the unwrapped mapping, and the same nil-return boolean
// convention applies (true when the alternative differs from name, false
// when it matches).
func (v *Value) IfNot(name string, onMiss ElseFunc, onMatch ElseFunc) any {
	if v.key != name {
		if onMiss != nil {
			if out := onMiss(v.Unwrap()); out != nil {
				return out
			}
		}
		return true
	}
	if onMatch != nil {
		if out := onMatch(v.Unwrap()); out != nil {
			return out
		}
	}
	return false
}

// Equal reports observable equality: same held alternative and deeply equal
// payload. Two Values are equal exactly when their Unwrap forms are.
func (v *Value) Equal(other *Value) bool {
	if other == nil {
		return false
	}
	return v.key == other.key && reflect.DeepEqual(v.payload, other.payload)
}

// String renders the Value as Alternative(payload), or just the alternative
// name for payload-less alternatives.
func (v *Value) String() string {
	if _, unit := v.payload.(Unit); unit {
		return v.key
	}
	return fmt.Sprintf("%s(%v)", v.key, v.payload)
}

// MarshalJSON serializes the canonical single-key mapping. Unit payloads
// become JSON null.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Unwrap())
}

// MarshalYAML serializes the canonical single-key mapping as a YAML mapping
// node. Unit payloads become YAML null.
func (v *Value) MarshalYAML() (any, error) {
	return v.Unwrap(), nil
}

// PayloadAs extracts the payload of v as type T. It fails with a
// KindPayloadType error when the payload is not a T. Extracting from a
// payload-less alternative succeeds only for T == Unit.
func PayloadAs[T any](v *Value) (T, error) {
	payload, ok := v.payload.(T)
	if !ok {
		var zero T
		return zero, newPayloadTypeError("PayloadAs", v.key, zero, v.payload)
	}
	return payload, nil
}
