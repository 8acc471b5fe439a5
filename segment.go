package panicfmt

import (
	"fmt"
	"io"
)

// Segment writes one piece of the rendered message (prefix, suffix or
// backtrace). A nil Segment writes nothing.
type Segment func(w io.Writer) error

// InfoSegment writes one piece of the rendered message that depends on the
// panic occurrence (location or payload). A nil InfoSegment writes nothing.
type InfoSegment func(w io.Writer, info Info) error

// TextPrefix returns a prefix segment writing the literal s.
func TextPrefix(s string) Segment {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

// LineSuffix returns a suffix segment writing a single line break.
func LineSuffix() Segment {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, "\n")
		return err
	}
}

// FileLineLocation returns a location segment writing "{file}:{line} - ",
// or "unknown:0 - " when the occurrence carries no location.
func FileLineLocation() InfoSegment {
	return func(w io.Writer, info Info) error {
		if !info.HasLocation() {
			_, err := io.WriteString(w, "unknown:0 - ")
			return err
		}
		_, err := fmt.Fprintf(w, "%s:%d - ", info.File, info.Line)
		return err
	}
}

// PayloadText returns a payload segment rendering the payload through the
// given casters, in order, falling back to its debug representation.
// At least one caster is required; this is checked when the segment is
// built, never on the render path.
func PayloadText(casters ...Caster) InfoSegment {
	if len(casters) == 0 {
		panic("panicfmt: PayloadText requires at least one caster")
	}
	return func(w io.Writer, info Info) error {
		_, err := io.WriteString(w, RenderPayload(info.Payload, casters...))
		return err
	}
}
