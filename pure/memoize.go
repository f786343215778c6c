package pure

// MemoizeI1O1 wraps a pure one-argument function so that it runs at most once per distinct argument.
// It panics with an *UnusableKeyError when the argument cannot be used as a key.
func MemoizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	opts ...Option,
) func(I1) O1 {
	memoized := memoize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(as[I1](args[0]))
		},
		opts...,
	)
	return func(i1 I1) O1 {
		return memoized(i1)
	}
}

func MemoizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	opts ...Option,
) func(I1, I2) O1 {
	memoized := memoize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(as[I1](args[0]), as[I2](args[1]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2) O1 {
		return memoized(i1, i2)
	}
}

func MemoizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...Option,
) func(I1, I2, I3) O1 {
	memoized := memoize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(as[I1](args[0]), as[I2](args[1]), as[I3](args[2]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memoized(i1, i2, i3)
	}
}

func MemoizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...Option,
) func(I1, I2, I3, I4) O1 {
	memoized := memoize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(as[I1](args[0]), as[I2](args[1]), as[I3](args[2]), as[I4](args[3]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return memoized(i1, i2, i3, i4)
	}
}

// MemoizeN wraps a variadic pure function. The whole argument list is the key,
// so calls with different lengths are distinct entries and no arguments is a key of its own.
func MemoizeN[I ComparableOrStringer, O any](
	pureFn func(...I) O,
	opts ...Option,
) func(...I) O {
	memoized := memoize(
		func(args ...ComparableOrStringer) O {
			typed := make([]I, len(args))
			for i, arg := range args {
				typed[i] = as[I](arg)
			}
			return pureFn(typed...)
		},
		opts...,
	)
	return func(in ...I) O {
		args := make([]ComparableOrStringer, len(in))
		for i, v := range in {
			args[i] = v
		}
		return memoized(args...)
	}
}

func memoize[O any](
	pureFn func(...ComparableOrStringer) O,
	opts ...Option,
) func(...ComparableOrStringer) O {
	m := newMemo[O](opts...)
	return func(args ...ComparableOrStringer) O {
		v, err := m.call(args, func() (O, error) {
			return pureFn(args...), nil
		})
		if err != nil {
			panic(err)
		}
		return v
	}
}
