package pure

// Table is a trie of memoized results keyed by an ordered tuple of key parts.
// Every node may carry a value, so tuples of different lengths never collide
// and the empty tuple is a valid key. Entries are never evicted.
//
// A Table is not safe for concurrent use.
type Table[O any] struct {
	root node[O]
	size int
}

type node[O any] struct {
	children map[ComparableOrString]*node[O]
	value    O
	present  bool
}

func NewTable[O any]() *Table[O] {
	return &Table[O]{}
}

func (t *Table[O]) Load(keys []ComparableOrString) (O, bool) {
	n := &t.root
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			var zero O
			return zero, false
		}
		n = child
	}
	if !n.present {
		var zero O
		return zero, false
	}
	return n.value, true
}

// Store records value under keys, replacing any previous value.
func (t *Table[O]) Store(keys []ComparableOrString, value O) {
	n := &t.root
	for _, k := range keys {
		if n.children == nil {
			n.children = make(map[ComparableOrString]*node[O])
		}
		child, ok := n.children[k]
		if !ok {
			child = &node[O]{}
			n.children[k] = child
		}
		n = child
	}
	if !n.present {
		t.size++
	}
	n.value = value
	n.present = true
}

// Len returns the number of stored entries.
func (t *Table[O]) Len() int {
	return t.size
}
