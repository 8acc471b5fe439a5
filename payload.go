package panicfmt

import "fmt"

// Caster attempts to turn a panic payload of one concrete type into its
// display text. It reports false when the payload is of another type.
type Caster func(v any) (string, bool)

// AsString matches payloads of type string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsError matches payloads implementing error.
func AsError(v any) (string, bool) {
	err, ok := v.(error)
	if !ok {
		return "", false
	}
	return err.Error(), true
}

// AsStringer matches payloads implementing fmt.Stringer.
func AsStringer(v any) (string, bool) {
	s, ok := v.(fmt.Stringer)
	if !ok {
		return "", false
	}
	return s.String(), true
}

// RenderPayload converts a panic payload into text by trying each caster in
// the given order. The first match wins; when none matches, the payload's
// debug representation is returned. The result is deterministic for a given
// payload and caster order, and never empty-handed.
func RenderPayload(v any, casters ...Caster) string {
	for _, cast := range casters {
		if s, ok := cast(v); ok {
			return s
		}
	}
	return fmt.Sprintf("%#v", v)
}
