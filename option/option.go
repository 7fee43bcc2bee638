// Package option provides the Option specialization of the variant
// construct: a union over the schema {Some: T, None: unit} for
// presence/absence semantics.
//
// Option adds no mechanism beyond the variant package, only typed
// constructors and extraction, demonstrating that the Union builder is
// schema-generic.
//
// Example:
//
//	opt := option.New[int]()
//	v := opt.Some(5)
//	doubled, err := v.Match(variant.Handlers{
//		option.Some: func(p any) (any, error) { return p.(int) * 2, nil },
//		option.None: func(any) (any, error) { return 0, nil },
//	})
package option

import "github.com/zero-day-ai/variant"

// Alternative names of the Option schema.
const (
	// Some holds a value of the Option's payload type.
	Some = "Some"

	// None holds no payload; its serialized form carries an explicit null.
	None = "None"
)

// union is the shared builder for the Option schema. The schema does not
// depend on the payload type, so one builder serves every instantiation.
var union = variant.MustUnion(Some, None)

// Option is a typed view over the {Some, None} union. The zero value is
// ready to use; New exists for symmetry with the rest of the SDK-style API.
type Option[T any] struct{}

// New returns an Option specialization for payload type T.
func New[T any]() Option[T] {
	return Option[T]{}
}

// Some constructs a Value holding the Some alternative with the given
// payload.
func (Option[T]) Some(v T) *variant.Value {
	return union.MustBuild(Some, v)
}

// None constructs a Value holding the None alternative. Its payload is the
// variant.Unit marker.
func (Option[T]) None() *variant.Value {
	return union.MustBuild(None, nil)
}

// Parse reconstructs an Option value from its canonical single-key mapping
// form. It fails under the same conditions as variant.Union.Parse.
func (Option[T]) Parse(data map[string]any) (*variant.Value, error) {
	return union.Parse(data)
}

// ParseJSON reconstructs an Option value from its serialized JSON form.
func (Option[T]) ParseJSON(data []byte) (*variant.Value, error) {
	return union.ParseJSON(data)
}

// Union returns the underlying builder, for generic code that works over
// arbitrary unions.
func (Option[T]) Union() *variant.Union {
	return union
}

// Get extracts the Some payload, mirroring Go's map-lookup idiom. It
// returns the zero value and false when v holds None or a payload of the
// wrong type.
func (Option[T]) Get(v *variant.Value) (T, bool) {
	if v.IsNot(Some) {
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
