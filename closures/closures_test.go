package closures_test

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/on-the-ground/closures_go/closures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewPrinter(t *testing.T) {
	var buf bytes.Buffer
	hello := closures.NewPrinter(&buf, "Hello")
	world := closures.NewPrinter(&buf, "World")

	hello()
	world()
	hello()

	assert.Equal(t, "Hello\nWorld\nHello\n", buf.String())
}

func TestMakeCounter_InstancesAreIndependent(t *testing.T) {
	counter1 := closures.MakeCounter()
	assert.Equal(t, 1, counter1())
	assert.Equal(t, 2, counter1())
	assert.Equal(t, 3, counter1())

	counter2 := closures.MakeCounter()
	assert.Equal(t, 1, counter2())
	assert.Equal(t, 2, counter2())

	assert.Equal(t, 4, counter1())
}

func TestMakeGreeter(t *testing.T) {
	hello := closures.MakeGreeter("Hello")
	hi := closures.MakeGreeter("Hi")

	assert.Equal(t, "Hello, Alice!", hello("Alice"))
	assert.Equal(t, "Hi, Bob!", hi("Bob"))
	// calling one greeter never changes the other
	assert.Equal(t, "Hello, Bob!", hello("Bob"))
	assert.Equal(t, "Hi, Alice!", hi("Alice"))
}

func TestNewFactorial_CachesIntermediateResults(t *testing.T) {
	var evaluated []int
	factorial := closures.NewFactorial(func(n int) {
		evaluated = append(evaluated, n)
	})

	require.Equal(t, int64(120), factorial(5).Int64())
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, evaluated)

	require.Equal(t, int64(720), factorial(6).Int64())
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0, 6}, evaluated)

	require.Equal(t, int64(120), factorial(5).Int64())
	require.Equal(t, int64(6), factorial(3).Int64())
	assert.Len(t, evaluated, 7)
}

func TestNewFactorial_BeyondMachineIntegers(t *testing.T) {
	factorial := closures.NewFactorial(nil)

	assert.Equal(t, "2432902008176640000", factorial(20).String())
	assert.Equal(t, "51090942171709440000", factorial(21).String())

	want := big.NewInt(1)
	for i := int64(2); i <= 66; i++ {
		want.Mul(want, big.NewInt(i))
	}
	assert.Zero(t, want.Cmp(factorial(66)))
	assert.True(t, factorial(66).Sign() > 0)
}

func TestNewFactorial_NegativeInputPanics(t *testing.T) {
	factorial := closures.NewFactorial(nil)
	assert.PanicsWithValue(t, "factorial: negative input -1", func() {
		factorial(-1)
	})
}

func TestRunAll(t *testing.T) {
	var buf bytes.Buffer
	closures.RunAll(&buf, zap.NewNop())

	want := []string{
		"Hello",
		"World",
		"1", "2", "3",
		"1", "2",
		"Hello, Alice!",
		"Hi, Bob!",
		"120",
		"720",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}

func TestRunMemoization_CustomInputs(t *testing.T) {
	var buf bytes.Buffer
	closures.RunMemoization(&buf, zap.NewNop(), 0, 1, 10, 21)
	assert.Equal(t, "1\n1\n3628800\n51090942171709440000\n", buf.String())
}
