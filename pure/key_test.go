package pure_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/closures_go/pure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableKey(t *testing.T) {
	type pair struct{ A, B int }
	x := 1

	tests := []struct {
		name string
		arg  pure.ComparableOrStringer
		want pure.ComparableOrString
	}{
		{"int", 5, 5},
		{"string", "a", "a"},
		{"struct", pair{1, 2}, pair{1, 2}},
		{"array", [2]int{1, 2}, [2]int{1, 2}},
		{"pointer", &x, &x},
		{"nil", nil, nil},
		{"comparable stringer", Celsius(10.4), Celsius(10.4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pure.TableKey(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableKey_Unusable(t *testing.T) {
	type holder struct{ V any }

	tests := []struct {
		name string
		arg  pure.ComparableOrStringer
	}{
		{"slice", []int{1}},
		{"map", map[string]int{}},
		{"func", func() {}},
		{"struct with slice", TotallyInvalid{}},
		{"interface field holding slice", holder{V: []int{1}}},
		{"nan", math.NaN()},
		{"complex nan", complex(math.NaN(), 0)},
		{"comparable stringer nan", Celsius(math.NaN())},
		{"nan in array", [2]float64{1, math.NaN()}},
		{"nan in struct", struct{ X, Y float64 }{1, math.NaN()}},
		{"nan in unexported field", struct{ v float32 }{float32(math.NaN())}},
		{"nan behind interface field", holder{V: math.NaN()}},
		{"nan in nested struct", struct{ P Point }{Point{X: math.NaN()}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pure.TableKey(tt.arg)
			assert.ErrorIs(t, err, pure.ErrUnusableKey)
		})
	}
}

func TestTableKey_StringerKeys(t *testing.T) {
	a, err := pure.TableKey(Celsius(10.1))
	require.NoError(t, err)
	b, err := pure.TableKey(Celsius(10.4))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "equal String() output must not merge comparable values")

	first, err := pure.TableKey(NonComparable{Field: []int{1}})
	require.NoError(t, err)
	second, err := pure.TableKey(NonComparable{Field: []int{1}})
	require.NoError(t, err)
	assert.True(t, first == second)

	plain, err := pure.TableKey("NonComparable[1]")
	require.NoError(t, err)
	assert.False(t, first == plain)
}

func TestTableKey_PointerToNaNIsUsable(t *testing.T) {
	nan := math.NaN()
	_, err := pure.TableKey(&nan)
	assert.NoError(t, err)
}

func TestTableKeys_ReportsPosition(t *testing.T) {
	keys, err := pure.TableKeys(1, "two", []byte("three"))
	assert.Nil(t, keys)

	var keyErr *pure.UnusableKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, 2, keyErr.Position)
	assert.Equal(t, "[]uint8", keyErr.Type)
	assert.Contains(t, err.Error(), "argument 2 of type []uint8")
}
