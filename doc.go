// Package variant provides runtime tagged unions: closed sets of named
// alternatives where a value holds exactly one alternative and its payload
// at a time.
//
// Go has no native closed-sum-type construct. This package provides a
// registration-time substitute: declare a Schema of alternative names once,
// obtain a Union builder for it, and construct Values that can never hold
// "no alternative" or two alternatives at once. Branching on a Value is
// either exhaustive or must declare an explicit catch-all fallback.
//
// # Core Concepts
//
// The package is organized around three types:
//
//   - Schema: the fixed, immutable set of declared alternative names
//   - Union: a stateless factory producing one Value per constructor call
//   - Value: an immutable runtime value holding one alternative + payload
//
// # Getting Started
//
// Declare a union and construct values:
//
//	shape, err := variant.NewUnion("Circle", "Rect")
//	if err != nil {
//		log.Fatal(err)
//	}
//	v, err := shape.Build("Circle", 2.5)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Branch on the held alternative:
//
//	desc, err := v.Match(variant.Handlers{
//		"Circle": func(p any) (any, error) { return fmt.Sprintf("circle r=%v", p), nil },
//		"Rect":   func(p any) (any, error) { return fmt.Sprintf("rect %v", p), nil },
//	})
//
// Handlers must cover the held alternative or supply a handler under the
// reserved catch-all key "_"; otherwise Match fails with a NoHandlerError.
//
// # Serialization
//
// The canonical external form of a Value is the single-key mapping
// {alternative: payload}, produced by Unwrap and consumed by Parse.
// JSON and YAML codecs (ParseJSON/ParseYAML, MarshalJSON/MarshalYAML) wrap
// that form; the protoconv subpackage bridges it to google.protobuf.Struct.
// Alternatives with no payload serialize with an explicit null so the
// single-key shape round-trips.
//
// # Thread Safety
//
// Schema and Union hold no mutable state and Value is immutable after
// construction, so all of them are safe for concurrent use without
// synchronization. MatchContext is the only blocking entry point and
// propagates the handler's context errors unchanged.
//
// # Prebuilt Specializations
//
// The option and result subpackages instantiate Union over the schemas
// {Some, None} and {Ok, Err} respectively. They add no new mechanism, only
// typed constructors and extraction helpers.
package variant
