package panicfmt_test

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/panicfmt/panicfmt"
)

func ExampleProfile_Print() {
	p := panicfmt.Simple().With(
		panicfmt.WithWriter(func() io.Writer { return os.Stdout }))
	p.Print(panicfmt.Info{File: "billing.go", Line: 12, Payload: "no such account"})
	// Output:
	// Panic:billing.go:12 - no such account
}

func ExampleCustom() {
	p := panicfmt.Custom(
		panicfmt.WithPrefix(panicfmt.TextPrefix("FATAL ")),
		panicfmt.WithPayload(panicfmt.PayloadText(panicfmt.AsString, panicfmt.AsError)),
		panicfmt.WithSuffix(panicfmt.LineSuffix()),
		panicfmt.WithWriter(func() io.Writer { return os.Stdout }),
	)
	p.Print(panicfmt.Info{Payload: "disk full"})
	// Output:
	// FATAL disk full
}

func ExampleCall() {
	panicfmt.Install(panicfmt.Empty())
	err := panicfmt.Call(func() error {
		panic("kaboom")
	})
	var pe *panicfmt.PanicError
	if errors.As(err, &pe) {
		fmt.Println(pe.Info.Payload)
	}
	// Output:
	// kaboom
}
