package panicfmt

import "fmt"

// PanicError is a panic converted into an error by Call.
type PanicError struct {
	Info Info
}

func (e *PanicError) Error() string {
	text := RenderPayload(e.Info.Payload, AsString, AsError, AsStringer)
	if e.Info.HasLocation() {
		return fmt.Sprintf("panic: %s (%s:%d)", text, e.Info.File, e.Info.Line)
	}
	return fmt.Sprintf("panic: %s", text)
}

// Unwrap exposes an error payload for errors.Is/As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Info.Payload.(error); ok {
		return err
	}
	return nil
}

// Call invokes fn. An error from fn is returned untouched. A panic in fn is
// rendered through the installed profile and returned as a *PanicError, so
// callers can treat the panic as an ordinary failure of the call.
func Call(fn func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		info := Recovered(v)
		Active().Print(info)
		err = &PanicError{Info: info}
	}()
	return fn()
}
