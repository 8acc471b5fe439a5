package panicfmt

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
)

const (
	pkgPrefix = "github.com/panicfmt/panicfmt."

	// hex digits of a program counter, plus the "0x" marker
	hexWidth = strconv.IntSize/4 + 2

	maxFrames = 64
)

// StackBacktrace returns a backtrace segment that walks the current call
// stack and writes one entry per frame: an index, the program counter, the
// function name (or <unknown>), and the source position when available.
//
// Leading frames are trimmed by ownership rather than by a fixed count:
// everything belonging to the runtime's panic machinery or to this package
// is skipped, so the first printed frame is the panic site regardless of
// how deep the rendering call chain happens to be.
func StackBacktrace() Segment {
	return func(w io.Writer) error {
		pc := make([]uintptr, maxFrames)
		n := runtime.Callers(2, pc)
		if _, err := io.WriteString(w, "Stack backtrace:"); err != nil {
			return err
		}
		frames := runtime.CallersFrames(pc[:n])
		idx := 0
		leading := true
		for {
			fr, more := frames.Next()
			if leading && machineryFrame(fr.Function) {
				if !more {
					break
				}
				continue
			}
			leading = false
			if err := writeFrame(w, idx, fr); err != nil {
				return err
			}
			idx++
			if !more {
				break
			}
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
}

func machineryFrame(fn string) bool {
	return strings.HasPrefix(fn, "runtime.") || strings.HasPrefix(fn, pkgPrefix)
}

func writeFrame(w io.Writer, idx int, fr runtime.Frame) error {
	if _, err := fmt.Fprintf(w, "\n%4d: %#0*x", idx, hexWidth, uint64(fr.PC)); err != nil {
		return err
	}
	name := fr.Function
	if name == "" {
		name = "<unknown>"
	}
	if _, err := fmt.Fprintf(w, " - %s", name); err != nil {
		return err
	}
	if fr.File != "" && fr.Line != 0 {
		if _, err := fmt.Fprintf(w, "\n      %*sat %s:%d", hexWidth, "", fr.File, fr.Line); err != nil {
			return err
		}
	}
	return nil
}
