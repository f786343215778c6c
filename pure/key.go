package pure

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ComparableOrStringer is any argument passed to a memoized function.
// It must either be comparable at runtime or implement fmt.Stringer.
// Comparability wins: a comparable Stringer is keyed by its value, not its text.
type ComparableOrStringer any

// ComparableOrString is a normalized key part stored in a Table.
type ComparableOrString any

// ErrUnusableKey is returned (or panicked with) when an argument cannot act as a table key.
var ErrUnusableKey = errors.New("argument cannot be used as a table key")

// UnusableKeyError describes which argument was rejected and why.
type UnusableKeyError struct {
	Position int
	Type     string
	Reason   string
}

func (e *UnusableKeyError) Error() string {
	return fmt.Sprintf("%v: argument %d of type %s %s", ErrUnusableKey, e.Position, e.Type, e.Reason)
}

func (e *UnusableKeyError) Unwrap() error {
	return ErrUnusableKey
}

// TableKey normalizes a single argument into a key part.
// Comparable values are their own key; a non-comparable fmt.Stringer is keyed
// by its dynamic type and String() output.
func TableKey(arg ComparableOrStringer) (ComparableOrString, error) {
	return tableKey(0, arg)
}

// TableKeys normalizes a whole argument tuple. Nothing is returned unless every part is usable.
func TableKeys(args ...ComparableOrStringer) ([]ComparableOrString, error) {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		k, err := tableKey(i, arg)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	return keys, nil
}

// stringerKey keys a non-comparable Stringer by its type and String() output,
// so it never equals a plain string or a Stringer of another type.
type stringerKey struct {
	typ reflect.Type
	s   string
}

func tableKey(pos int, arg ComparableOrStringer) (ComparableOrString, error) {
	if arg == nil {
		return nil, nil
	}

	v := reflect.ValueOf(arg)
	if !v.Comparable() {
		stringer, ok := arg.(fmt.Stringer)
		if !ok {
			return nil, &UnusableKeyError{
				Position: pos,
				Type:     fmt.Sprintf("%T", arg),
				Reason:   "is not comparable and does not implement fmt.Stringer",
			}
		}
		return stringerKey{typ: v.Type(), s: stringer.String()}, nil
	}
	if containsNaN(v) {
		return nil, &UnusableKeyError{
			Position: pos,
			Type:     fmt.Sprintf("%T", arg),
			Reason:   "holds a NaN and never equals itself",
		}
	}
	return arg, nil
}

// containsNaN looks through arrays, struct fields and interfaces.
// Pointers are compared by address, so their targets are not inspected.
func containsNaN(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return math.IsNaN(real(c)) || math.IsNaN(imag(c))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if containsNaN(v.Index(i)) {
				return true
			}
		}
		return false
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if containsNaN(v.Field(i)) {
				return true
			}
		}
		return false
	case reflect.Interface:
		return !v.IsNil() && containsNaN(v.Elem())
	default:
		return false
	}
}
