package variant

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Union is a factory for Values over a fixed Schema: one constructor call
// per alternative name, plus Parse for reconstructing a Value from its
// canonical single-key mapping form.
//
// A Union is stateless with respect to the Values it produces: it owns no
// instances and every call is independent, so a Union is safe to use
// concurrently from multiple goroutines.
type Union struct {
	schema *Schema
}

// New returns a Union over an already-declared schema.
func New(schema *Schema) *Union {
	return &Union{schema: schema}
}

// NewUnion declares a schema over the given alternative names and returns a
// Union for it. It fails under the same conditions as NewSchema.
func NewUnion(alternatives ...string) (*Union, error) {
	schema, err := NewSchema(alternatives...)
	if err != nil {
		return nil, err
	}
	return New(schema), nil
}

// MustUnion is like NewUnion but panics on schema errors. It is intended for
// unions whose alternative names are compile-time constants, such as the
// option and result specializations.
func MustUnion(alternatives ...string) *Union {
	u, err := NewUnion(alternatives...)
	if err != nil {
		panic(err)
	}
	return u
}

// Schema returns the union's schema.
func (u *Union) Schema() *Schema {
	return u.schema
}

// Alternatives returns the declared alternative names in declaration order.
func (u *Union) Alternatives() []string {
	return u.schema.Alternatives()
}

// Declares reports whether name is a declared alternative.
func (u *Union) Declares(name string) bool {
	return u.schema.Declares(name)
}

// Build constructs a Value holding the named alternative with the given
// payload. A nil payload is stored as the Unit marker, which is how
// payload-less alternatives (e.g. Option's None) are represented.
//
// Build fails with a KindReservedName error when name is the catch-all name
// (checked explicitly even though NewSchema already rejects it, against
// schemas assembled at runtime) and with a KindUnknownAlternative error when
// name is not declared.
func (u *Union) Build(name string, payload any) (*Value, error) {
	if name == CatchAll {
		return nil, newReservedNameError("Union.Build")
	}
	if !u.schema.Declares(name) {
		return nil, newUnknownAlternativeError("Union.Build", name)
	}
	return newValue(name, payload), nil
}

// MustBuild is like Build but panics on error. It is intended for call sites
// where the alternative name is a compile-time constant of the schema.
func (u *Union) MustBuild(name string, payload any) *Value {
	v, err := u.Build(name, payload)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse reconstructs a Value from its canonical single-key mapping form, as
// produced by Value.Unwrap. The mapping must contain exactly one key
// (KindCardinality error otherwise), the key must not be the catch-all name
// (KindReservedName), and it must be a declared alternative
// (KindUnknownAlternative). A nil payload parses to the Unit marker.
//
// Parse(v.Unwrap()) yields a Value observably equal to v.
func (u *Union) Parse(data map[string]any) (*Value, error) {
	if len(data) != 1 {
		return nil, newCardinalityError("Union.Parse", len(data))
	}

	for name, payload := range data {
		if name == CatchAll {
			return nil, newReservedNameError("Union.Parse")
		}
		if !u.schema.Declares(name) {
			return nil, newUnknownAlternativeError("Union.Parse", name)
		}
		return newValue(name, payload), nil
	}

	// Unreachable: the length check above guarantees one iteration.
	return nil, newCardinalityError("Union.Parse", 0)
}

// ParseJSON decodes a JSON object in the canonical single-key form and
// parses it. A JSON null payload becomes the Unit marker, so serialized
// payload-less alternatives round-trip.
func (u *Union) ParseJSON(data []byte) (*Value, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("variant: Union.ParseJSON: %w", err)
	}
	return u.Parse(m)
}

// ParseYAML decodes a YAML mapping in the canonical single-key form and
// parses it, mirroring ParseJSON.
func (u *Union) ParseYAML(data []byte) (*Value, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("variant: Union.ParseYAML: %w", err)
	}
	return u.Parse(m)
}
