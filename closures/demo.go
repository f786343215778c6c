package closures

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/on-the-ground/closures_go/pure"
)

func RunMessages(w io.Writer) {
	closure1 := NewPrinter(w, "Hello")
	closure2 := NewPrinter(w, "World")

	closure1()
	closure2()
}

// RunCounters shows that each counter keeps its own count.
func RunCounters(w io.Writer) {
	counter1 := MakeCounter()
	fmt.Fprintln(w, counter1())
	fmt.Fprintln(w, counter1())
	fmt.Fprintln(w, counter1())

	counter2 := MakeCounter()
	fmt.Fprintln(w, counter2())
	fmt.Fprintln(w, counter2())
}

func RunGreeters(w io.Writer) {
	helloGreeter := MakeGreeter("Hello")
	hiGreeter := MakeGreeter("Hi")

	fmt.Fprintln(w, helloGreeter("Alice"))
	fmt.Fprintln(w, hiGreeter("Bob"))
}

// RunMemoization prints factorial(n) for each n with one shared memoized factorial,
// so later inputs reuse the results of earlier ones. With no inputs it prints 5! and 6!.
func RunMemoization(w io.Writer, logger *zap.Logger, inputs ...int) {
	if len(inputs) == 0 {
		inputs = []int{5, 6}
	}
	factorial := NewFactorial(nil, pure.WithLogger(logger))
	for _, n := range inputs {
		fmt.Fprintln(w, factorial(n))
	}
}

func RunAll(w io.Writer, logger *zap.Logger) {
	RunMessages(w)
	RunCounters(w)
	RunGreeters(w)
	RunMemoization(w, logger)
}
