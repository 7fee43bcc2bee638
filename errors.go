package variant

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes of the variant construct.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrReservedName indicates an attempt to declare or construct an
	// alternative using the reserved catch-all name.
	ErrReservedName = errors.New("reserved catch-all name used as alternative")

	// ErrCardinality indicates that Parse received a mapping whose key
	// count is not exactly one.
	ErrCardinality = errors.New("mapping must contain exactly one key")

	// ErrUnknownAlternative indicates a name that is not declared by the
	// union's schema.
	ErrUnknownAlternative = errors.New("alternative not declared by schema")

	// ErrNoHandler indicates that a handler mapping covers neither the
	// held alternative nor the catch-all key.
	ErrNoHandler = errors.New("no handler for held alternative")

	// ErrPayloadType indicates that a payload could not be converted to
	// the requested type.
	ErrPayloadType = errors.New("payload type mismatch")
)

// Error kinds categorize errors by their type.
const (
	// KindReservedName represents misuse of the reserved catch-all name.
	KindReservedName = "reserved_name"

	// KindCardinality represents a parse input with the wrong key count.
	KindCardinality = "cardinality"

	// KindUnknownAlternative represents references to undeclared names.
	KindUnknownAlternative = "unknown_alternative"

	// KindNoHandler represents match dispatch with no applicable handler.
	KindNoHandler = "no_handler"

	// KindPayloadType represents typed payload extraction failures.
	KindPayloadType = "payload_type"

	// KindSchema represents invalid schema declarations.
	KindSchema = "schema"
)

// VariantError is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// VariantError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As(). All errors in this
// package are raised synchronously at the point of violation; none of the
// operations retry, recover, or partially succeed.
type VariantError struct {
	// Op is the operation that failed (e.g., "Union.Build", "Value.Match").
	Op string

	// Kind categorizes the error (e.g., KindCardinality, KindNoHandler).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This typically carries the offending alternative name or key count.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *VariantError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("variant: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("variant: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("variant: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *VariantError) Unwrap() error {
	return e.Err
}

// Is implements error matching for VariantError, allowing comparison based
// on the underlying error or on another VariantError's Op/Kind.
func (e *VariantError) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*VariantError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a new VariantError with the provided context added.
// The receiver is not modified.
func (e *VariantError) WithContext(ctx map[string]any) *VariantError {
	newErr := *e
	newErr.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// newReservedNameError creates a VariantError with KindReservedName.
func newReservedNameError(op string) *VariantError {
	return &VariantError{
		Op:   op,
		Kind: KindReservedName,
		Err:  ErrReservedName,
		Context: map[string]any{
			"name": CatchAll,
		},
	}
}

// newCardinalityError creates a VariantError with KindCardinality.
func newCardinalityError(op string, keys int) *VariantError {
	return &VariantError{
		Op:   op,
		Kind: KindCardinality,
		Err:  ErrCardinality,
		Context: map[string]any{
			"keys": keys,
		},
	}
}

// newUnknownAlternativeError creates a VariantError with
// KindUnknownAlternative.
func newUnknownAlternativeError(op, name string) *VariantError {
	return &VariantError{
		Op:   op,
		Kind: KindUnknownAlternative,
		Err:  ErrUnknownAlternative,
		Context: map[string]any{
			"name": name,
		},
	}
}

// newNoHandlerError creates a VariantError with KindNoHandler naming the
// held alternative that had no handler.
func newNoHandlerError(op, held string) *VariantError {
	return &VariantError{
		Op:   op,
		Kind: KindNoHandler,
		Err:  ErrNoHandler,
		Context: map[string]any{
			"alternative": held,
		},
	}
}

// newSchemaError creates a VariantError with KindSchema.
func newSchemaError(op string, err error) *VariantError {
	return &VariantError{
		Op:   op,
		Kind: KindSchema,
		Err:  err,
	}
}

// newPayloadTypeError creates a VariantError with KindPayloadType.
func newPayloadTypeError(op, alternative string, want, got any) *VariantError {
	return &VariantError{
		Op:   op,
		Kind: KindPayloadType,
		Err:  ErrPayloadType,
		Context: map[string]any{
			"alternative": alternative,
			"want":        fmt.Sprintf("%T", want),
			"got":         fmt.Sprintf("%T", got),
		},
	}
}
