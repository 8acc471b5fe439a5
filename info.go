package panicfmt

import (
	"log/slog"
	"runtime"
	"strings"
)

// Info describes one panic occurrence: the recovered payload and, when the
// runtime recorded one, the source location of the panic site.
type Info struct {
	Payload any
	File    string
	Line    int
}

// HasLocation reports whether a panic site was recorded.
func (i Info) HasLocation() bool {
	return i.File != ""
}

// LogValue implements slog.LogValuer so an Info can be passed as a log attribute.
func (i Info) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("payload", RenderPayload(i.Payload, AsString, AsError, AsStringer)),
	}
	if i.HasLocation() {
		attrs = append(attrs, slog.String("file", i.File), slog.Int("line", i.Line))
	}
	return slog.GroupValue(attrs...)
}

// Recovered builds an Info for a value obtained from recover(), locating the
// panic site by walking the current call stack. It must be called while the
// deferred recovery is still on the stack; otherwise the location is unknown.
func Recovered(v any) Info {
	file, line := panicSite()
	return Info{Payload: v, File: file, Line: line}
}

// panicSite returns the source position of the frame that raised the panic
// currently being recovered. The walk skips everything up to and including
// runtime.gopanic, then returns the first frame outside the runtime.
func panicSite() (string, int) {
	pc := make([]uintptr, 64)
	n := runtime.Callers(2, pc)
	if n == 0 {
		return "", 0
	}
	frames := runtime.CallersFrames(pc[:n])
	raised := false
	for {
		fr, more := frames.Next()
		switch {
		case fr.Function == "runtime.gopanic":
			raised = true
		case raised && !strings.HasPrefix(fr.Function, "runtime."):
			return fr.File, fr.Line
		}
		if !more {
			return "", 0
		}
	}
}
