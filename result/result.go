// Package result provides the Result specialization of the variant
// construct: a union over the schema {Ok: T, Err: E} for success/failure
// semantics where the failure branch carries data.
//
// Result adds no mechanism beyond the variant package, only typed
// constructors and extraction, demonstrating that the Union builder is
// schema-generic.
//
// Example:
//
//	res := result.New[int, string]()
//	v := res.Err("bad input")
//	v.Unwrap() // map[string]any{"Err": "bad input"}
package result

import "github.com/zero-day-ai/variant"

// Alternative names of the Result schema.
const (
	// Ok holds a success value of the Result's payload type.
	Ok = "Ok"

	// Err holds a failure value of the Result's error payload type.
	Err = "Err"
)

// union is the shared builder for the Result schema. The schema does not
// depend on the payload types, so one builder serves every instantiation.
var union = variant.MustUnion(Ok, Err)

// Result is a typed view over the {Ok, Err} union. The zero value is ready
// to use.
type Result[T, E any] struct{}

// New returns a Result specialization with success type T and error type E.
func New[T, E any]() Result[T, E] {
	return Result[T, E]{}
}

// Ok constructs a Value holding the Ok alternative with the given payload.
func (Result[T, E]) Ok(v T) *variant.Value {
	return union.MustBuild(Ok, v)
}

// Err constructs a Value holding the Err alternative with the given
// payload.
func (Result[T, E]) Err(e E) *variant.Value {
	return union.MustBuild(Err, e)
}

// Parse reconstructs a Result value from its canonical single-key mapping
// form. It fails under the same conditions as variant.Union.Parse.
func (Result[T, E]) Parse(data map[string]any) (*variant.Value, error) {
	return union.Parse(data)
}

// ParseJSON reconstructs a Result value from its serialized JSON form.
func (Result[T, E]) ParseJSON(data []byte) (*variant.Value, error) {
	return union.ParseJSON(data)
}

// Union returns the underlying builder, for generic code that works over
// arbitrary unions.
func (Result[T, E]) Union() *variant.Union {
	return union
}

// Get extracts the Ok payload. It returns the zero value and false when v
// holds Err or a payload of the wrong type.
func (Result[T, E]) Get(v *variant.Value) (T, bool) {
	if v.IsNot(Ok) {
		var zero T
		return zero, false
	}
	payload, err := variant.PayloadAs[T](v)
	if err != nil {
		var zero T
		return zero, false
	}
	return payload, true
}

// GetErr extracts the Err payload. It returns the zero value and false when
// v holds Ok or a payload of the wrong type.
func (Result[T, E]) GetErr(v *variant.Value) (E, bool) {
	if v.IsNot(Err) {
		var zero E
		return zero, false
	}
	payload, err := variant.PayloadAs[E](v)
	if err != nil {
		var zero E
		return zero, false
	}
	return payload, true
}
