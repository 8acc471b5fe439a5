// Package panicfmt customizes how panics are rendered to an error stream.
//
// A Profile composes five independent segments (backtrace, prefix, location,
// payload, suffix) with a sink constructor. Install makes a profile the
// process-wide one; Catch, CatchExit, Go, Call and the HTTP RecoverHandler
// route recovered panics through it.
//
//	func main() {
//		panicfmt.Install(panicfmt.Debug())
//		defer panicfmt.CatchExit()
//		run()
//	}
//
// Rendering is best effort: write errors are discarded and no panic ever
// escapes the render path, so a dead stderr never turns one failure into two.
package panicfmt
