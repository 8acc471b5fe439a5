package panicfmt_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/panicfmt/panicfmt"
)

// These tests live outside the package on purpose: the backtrace walker
// trims frames owned by the library, so the caller must be foreign for its
// frame to be retained.

func render(t *testing.T, p panicfmt.Profile, info panicfmt.Info) string {
	t.Helper()
	buf := new(bytes.Buffer)
	p.With(panicfmt.WithWriter(func() io.Writer { return buf })).Print(info)
	return buf.String()
}

func TestDebugStartsWithBacktrace(t *testing.T) {
	out := render(t, panicfmt.Debug(), panicfmt.Info{File: "foo.rs", Line: 42, Payload: "lolka"})
	if !strings.HasPrefix(out, "Stack backtrace:") {
		t.Errorf("expected leading backtrace marker, got %q", out)
	}
}

func TestDebugIsSupersetOfSimple(t *testing.T) {
	info := panicfmt.Info{File: "foo.rs", Line: 42, Payload: "lolka"}
	simple := render(t, panicfmt.Simple(), info)
	debug := render(t, panicfmt.Debug(), info)
	if !strings.HasSuffix(debug, simple) {
		t.Errorf("debug output must end with the simple message\nsimple: %q\ndebug: %q", simple, debug)
	}
	if len(debug) <= len(simple) {
		t.Error("expected a non-empty backtrace segment")
	}
}

func TestBacktraceRetainsCallerFrame(t *testing.T) {
	out := render(t, panicfmt.Debug(), panicfmt.Info{Payload: "lolka"})
	if !strings.Contains(out, "backtrace_test.go") {
		t.Errorf("expected the calling test frame, got %q", out)
	}
	if strings.Contains(out, "panicfmt.Profile.Print") {
		t.Errorf("library frames must be trimmed, got %q", out)
	}
}

func TestBacktraceFrameLayout(t *testing.T) {
	out := render(t, panicfmt.Debug(), panicfmt.Info{Payload: "lolka"})
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected frame lines, got %q", out)
	}
	// first frame line: "   0: 0x...."
	first := lines[1]
	if !strings.HasPrefix(first, "   0: 0x") {
		t.Errorf("unexpected frame line %q", first)
	}
	if !strings.Contains(first, " - ") {
		t.Errorf("expected symbol name in %q", first)
	}
	var sawAt bool
	for _, l := range lines {
		if strings.Contains(l, "at ") && strings.Contains(l, ":") {
			sawAt = true
		}
	}
	if !sawAt {
		t.Error("expected at least one source position line")
	}
}
