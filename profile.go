package panicfmt

import (
	"bufio"
	"io"
	"os"
)

// Profile is a fixed composition of the five segment roles plus a sink
// constructor. Rendering order is always backtrace, prefix, location,
// payload, suffix. Profiles are value types; With returns modified copies.
type Profile struct {
	backtrace Segment
	prefix    Segment
	location  InfoSegment
	payload   InfoSegment
	suffix    Segment
	newWriter func() io.Writer
	silent    bool
}

// Option configures a single role or the sink of a Profile.
type Option func(*Profile)

// WithBacktrace sets the backtrace segment. Nil writes nothing.
func WithBacktrace(s Segment) Option {
	return func(p *Profile) { p.backtrace = s }
}

// WithPrefix sets the prefix segment. Nil writes nothing.
func WithPrefix(s Segment) Option {
	return func(p *Profile) { p.prefix = s }
}

// WithLocation sets the location segment. Nil writes nothing.
func WithLocation(s InfoSegment) Option {
	return func(p *Profile) { p.location = s }
}

// WithPayload sets the payload segment. Nil writes nothing.
func WithPayload(s InfoSegment) Option {
	return func(p *Profile) { p.payload = s }
}

// WithSuffix sets the suffix segment. Nil writes nothing.
func WithSuffix(s Segment) Option {
	return func(p *Profile) { p.suffix = s }
}

// WithWriter sets the sink constructor. The sink is acquired once per
// rendering, shared by all segments, and flushed at the end when it
// implements Flush() error.
func WithWriter(newWriter func() io.Writer) Option {
	return func(p *Profile) { p.newWriter = newWriter }
}

// With returns a copy of the profile with the given options applied.
func (p Profile) With(opts ...Option) Profile {
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// Custom builds a profile from scratch: every role writes nothing and the
// sink is buffered stderr until options say otherwise.
func Custom(opts ...Option) Profile {
	return Profile{newWriter: BufferedStderr}.With(opts...)
}

// Empty is the silent profile: Print is a true no-op and no sink is acquired.
func Empty() Profile {
	return Profile{newWriter: Stderr, silent: true}
}

// Simple renders "Panic:{file}:{line} - {payload}\n" to buffered stderr.
// The payload is matched as string, error, then fmt.Stringer before falling
// back to its debug representation.
func Simple() Profile {
	return Profile{
		prefix:    TextPrefix("Panic:"),
		location:  FileLineLocation(),
		payload:   PayloadText(AsString, AsError, AsStringer),
		suffix:    LineSuffix(),
		newWriter: BufferedStderr,
	}
}

// Debug is Simple preceded by a stack backtrace.
func Debug() Profile {
	return Simple().With(WithBacktrace(StackBacktrace()))
}

// JustError renders only "{payload}\n": no prefix, no location.
func JustError() Profile {
	return Profile{
		payload:   PayloadText(AsString, AsError, AsStringer),
		suffix:    LineSuffix(),
		newWriter: BufferedStderr,
	}
}

// Stderr returns the unbuffered standard error stream.
func Stderr() io.Writer {
	return os.Stderr
}

// BufferedStderr returns the standard error stream behind a buffer, so one
// rendering reaches the stream as few large writes instead of many small ones.
func BufferedStderr() io.Writer {
	return bufio.NewWriter(os.Stderr)
}

// Print renders one panic occurrence. The sink is acquired, each segment is
// written in fixed order, and every write error is discarded: rendering
// continues with the remaining segments so a dead sink only shortens the
// message. No panic escapes Print.
func (p Profile) Print(info Info) {
	if p.silent {
		return
	}
	defer func() {
		_ = recover()
	}()
	var w io.Writer = os.Stderr
	if p.newWriter != nil {
		w = p.newWriter()
	}
	if p.backtrace != nil {
		_ = p.backtrace(w)
	}
	if p.prefix != nil {
		_ = p.prefix(w)
	}
	if p.location != nil {
		_ = p.location(w, info)
	}
	if p.payload != nil {
		_ = p.payload(w, info)
	}
	if p.suffix != nil {
		_ = p.suffix(w)
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
