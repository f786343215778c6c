package closures

import (
	"fmt"
	"io"
)

// NewPrinter returns a closure that writes msg on its own line to w every time it is called.
func NewPrinter(w io.Writer, msg string) func() {
	return func() {
		fmt.Fprintln(w, msg)
	}
}

// MakeCounter returns a closure over a private count. The first call returns 1.
func MakeCounter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

// MakeGreeter returns a closure that greets a name with the captured greeting.
func MakeGreeter(greeting string) func(name string) string {
	return func(name string) string {
		return fmt.Sprintf("%s, %s!", greeting, name)
	}
}
