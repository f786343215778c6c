// Package pure provides memoization for pure functions.
//
// Memoize is not just a utility to add a cache.
// Memoize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// A memoized function owns a private table created empty when the wrapper is built.
// The wrapped function runs at most once per distinct argument tuple; entries are
// added on first use and never evicted. The table lives as long as the wrapper does.
//
// Features:
//   - MemoizeI1O1 to MemoizeI4O2: typed, generic memoizers for common arities.
//   - MemoizeI1O1E to MemoizeI4O1E: fallible functions, errors are never cached.
//   - MemoizeN: variadic functions, the whole argument list is the key.
//   - Arguments must be comparable or implement fmt.Stringer; anything else fails
//     fast with ErrUnusableKey before the function runs.
//
// A recursive function that calls back through its own wrapper caches every
// intermediate result:
//
//	var fact func(int) int
//	fact = pure.MemoizeI1O1(func(n int) int {
//	    if n == 0 {
//	        return 1
//	    }
//	    return n * fact(n-1)
//	})
//
// Memoized functions are not safe for concurrent use unless built with WithConcurrentAccess.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package pure
