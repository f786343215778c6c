package pure

// MemoizeI1O1E wraps a fallible one-argument function.
// Errors from fn are returned unchanged and never stored, so the next call with
// the same argument runs fn again. An unusable argument is reported as an error
// wrapping ErrUnusableKey instead of a panic.
func MemoizeI1O1E[I1 ComparableOrStringer, O1 any](
	fn func(I1) (O1, error),
	opts ...Option,
) func(I1) (O1, error) {
	memoized := memoizeE(
		func(args ...ComparableOrStringer) (O1, error) {
			return fn(as[I1](args[0]))
		},
		opts...,
	)
	return func(i1 I1) (O1, error) {
		return memoized(i1)
	}
}

func MemoizeI2O1E[I1, I2 ComparableOrStringer, O1 any](
	fn func(I1, I2) (O1, error),
	opts ...Option,
) func(I1, I2) (O1, error) {
	memoized := memoizeE(
		func(args ...ComparableOrStringer) (O1, error) {
			return fn(as[I1](args[0]), as[I2](args[1]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2) (O1, error) {
		return memoized(i1, i2)
	}
}

func MemoizeI3O1E[I1, I2, I3 ComparableOrStringer, O1 any](
	fn func(I1, I2, I3) (O1, error),
	opts ...Option,
) func(I1, I2, I3) (O1, error) {
	memoized := memoizeE(
		func(args ...ComparableOrStringer) (O1, error) {
			return fn(as[I1](args[0]), as[I2](args[1]), as[I3](args[2]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return memoized(i1, i2, i3)
	}
}

func MemoizeI4O1E[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	fn func(I1, I2, I3, I4) (O1, error),
	opts ...Option,
) func(I1, I2, I3, I4) (O1, error) {
	memoized := memoizeE(
		func(args ...ComparableOrStringer) (O1, error) {
			return fn(as[I1](args[0]), as[I2](args[1]), as[I3](args[2]), as[I4](args[3]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
		return memoized(i1, i2, i3, i4)
	}
}

func memoizeE[O any](
	fn func(...ComparableOrStringer) (O, error),
	opts ...Option,
) func(...ComparableOrStringer) (O, error) {
	m := newMemo[O](opts...)
	return func(args ...ComparableOrStringer) (O, error) {
		return m.call(args, func() (O, error) {
			return fn(args...)
		})
	}
}
