package panicfmt

import (
	"os"
	"sync/atomic"
)

// The process-wide profile. Swapped atomically so installation from one
// goroutine is immediately visible to panics on any other.
var active atomic.Pointer[Profile]

func init() {
	Install(Simple())
}

// Install makes p the process-wide profile used by Catch, CatchExit, Go,
// Call and RecoverHandler. The previous profile is replaced; the last
// installation wins and stays in effect for the rest of the process.
func Install(p Profile) {
	active.Store(&p)
}

// Active returns the currently installed profile.
func Active() Profile {
	return *active.Load()
}

// Catch recovers a panic and renders it through the installed profile.
// The panic is swallowed; execution continues after the deferring function.
//
//	defer panicfmt.Catch()
func Catch() {
	v := recover()
	if v == nil {
		return
	}
	Active().Print(Recovered(v))
}

// CatchExit recovers a panic, renders it through the installed profile and
// exits with code 2, the same code the runtime uses for an unrecovered
// panic. Deferred functions further up the stack do not run.
func CatchExit() {
	v := recover()
	if v == nil {
		return
	}
	Active().Print(Recovered(v))
	os.Exit(2)
}

// Go runs fn in a new goroutine guarded by Catch, so a panic in fn is
// rendered instead of crashing the process.
func Go(fn func()) {
	go func() {
		defer Catch()
		fn()
	}()
}
