package pure

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/singleflight"
)

// memo owns the table of one memoized function.
// Without Config.Concurrent it must not be called from more than one goroutine.
type memo[O any] struct {
	id     string
	name   string
	logger *zap.Logger

	table *Table[O]

	shards  []shard[O]
	flights *singleflight.Group
}

type shard[O any] struct {
	mu    sync.RWMutex
	table Table[O]
}

func (s *shard[O]) load(keys []ComparableOrString) (O, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Load(keys)
}

func (s *shard[O]) store(keys []ComparableOrString, value O) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Store(keys, value)
}

func newMemo[O any](opts ...Option) *memo[O] {
	cfg := NewConfig(opts...)
	m := &memo[O]{
		id:     uuid.New().String(),
		name:   cfg.Name,
		logger: cfg.Logger,
	}
	if cfg.Concurrent {
		m.shards = make([]shard[O], cfg.Shards)
		m.flights = &singleflight.Group{}
	} else {
		m.table = NewTable[O]()
	}
	m.debug("created memoized function", nil, zap.Bool("concurrent", cfg.Concurrent))
	return m
}

// call returns the stored result for args, or runs fn and stores its result
// when fn succeeds. Failed results are never stored.
func (m *memo[O]) call(args []ComparableOrStringer, fn func() (O, error)) (O, error) {
	keys, err := TableKeys(args...)
	if err != nil {
		m.debug("rejected unusable key", nil, zap.Error(err))
		var zero O
		return zero, err
	}
	if m.table != nil {
		return m.callLocal(keys, fn)
	}
	return m.callShared(keys, fn)
}

func (m *memo[O]) callLocal(keys []ComparableOrString, fn func() (O, error)) (O, error) {
	if v, ok := m.table.Load(keys); ok {
		m.debug("hit", keys)
		return v, nil
	}
	return m.compute(keys, fn, m.table.Store)
}

// flight is the outcome of one singleflight computation, tagged with the
// argument tuple it was computed for.
type flight[O any] struct {
	keys  []ComparableOrString
	value O
	err   error
}

func (m *memo[O]) callShared(keys []ComparableOrString, fn func() (O, error)) (O, error) {
	fp := fingerprint(keys)
	sh := &m.shards[xxhash.Sum64String(fp)%uint64(len(m.shards))]
	for {
		if v, ok := sh.load(keys); ok {
			m.debug("hit", keys)
			return v, nil
		}

		res, _, shared := m.flights.Do(fp, func() (any, error) {
			if v, ok := sh.load(keys); ok {
				return flight[O]{keys: keys, value: v}, nil
			}
			v, err := m.compute(keys, fn, sh.store)
			return flight[O]{keys: keys, value: v, err: err}, nil
		})
		f := res.(flight[O])
		if sameKeys(f.keys, keys) {
			if shared {
				m.debug("joined in-flight computation", keys)
			}
			return f.value, f.err
		}
		// Joined a flight for a different tuple with the same fingerprint.
		// Every computation runs inside a flight, so retrying keeps f at most once per key.
		m.debug("fingerprint shared with another argument tuple, retrying", keys)
	}
}

func sameKeys(a, b []ComparableOrString) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m *memo[O]) compute(
	keys []ComparableOrString,
	fn func() (O, error),
	store func([]ComparableOrString, O),
) (O, error) {
	m.debug("miss", keys)
	v, err := fn()
	if err != nil {
		m.debug("computation failed, result not stored", keys, zap.Error(err))
		return v, err
	}
	store(keys, v)
	return v, nil
}

func (m *memo[O]) debug(msg string, keys []ComparableOrString, fields ...zap.Field) {
	ce := m.logger.Check(zapcore.DebugLevel, msg)
	if ce == nil {
		return
	}
	fields = append(fields, zap.String("memo", m.name), zap.String("memo_id", m.id))
	if keys != nil {
		fields = append(fields, zap.Any("keys", keys))
	}
	ce.Write(fields...)
}

func fingerprint(keys []ComparableOrString) string {
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%T=%#v\x1f", k, k)
	}
	return b.String()
}

// as asserts v to T, mapping a nil argument to the zero value of T.
func as[T any](v ComparableOrStringer) T {
	t, _ := v.(T)
	return t
}
