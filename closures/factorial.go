package closures

import (
	"fmt"
	"math/big"

	"github.com/on-the-ground/closures_go/pure"
)

// NewFactorial returns a memoized recursive factorial with arbitrary precision.
// Each recursive step goes back through the wrapper, so every intermediate
// result is cached. onEval, when not nil, is called once per executed body.
// A negative input panics.
//
// The returned *big.Int values are owned by the memo table and must not be modified.
func NewFactorial(onEval func(n int), opts ...pure.Option) func(int) *big.Int {
	var factorial func(int) *big.Int
	factorial = pure.MemoizeI1O1(func(n int) *big.Int {
		if n < 0 {
			panic(fmt.Sprintf("factorial: negative input %d", n))
		}
		if onEval != nil {
			onEval(n)
		}
		if n == 0 {
			return big.NewInt(1)
		}
		return new(big.Int).Mul(big.NewInt(int64(n)), factorial(n-1))
	}, append([]pure.Option{pure.WithName("factorial")}, opts...)...)
	return factorial
}
