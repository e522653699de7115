package probemap

// entry is a live (key, value) pair occupying one slot. The key never
// changes after insertion; updates rewrite the value in place.
type entry[V any] struct {
	key   string
	value V
}

// table is the backing store: a fixed array of tagged-optional slots
// (nil = empty), a live-entry count, and a cursor into the prime capacity
// schedule. It grows by full reconstruction, never in place.
type table[V any] struct {
	slots     []*entry[V]
	count     int
	nextPrime int

	hashFunc HashFunc
}

type Option[V any] func(t *table[V])

// Override the default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

func (t *table[V]) init(capacity int, opts ...Option[V]) {
	size := max(MinCapacity, capacity)
	if size < 2 {
		// The hash multiplier is reduced modulo size-1, so a 1-slot table
		// cannot hash any key.
		size = 2
	}

	t.slots = make([]*entry[V], size)
	t.count = 0

	// Position the cursor at the first prime strictly greater than the
	// requested size. The comparison is against the requested value, not
	// the clamped one, to keep growth timing stable under clamping.
	t.nextPrime = 0
	for t.nextPrime < len(primes) && primes[t.nextPrime] <= capacity {
		t.nextPrime++
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = polyHash
	}
}

// probeOutcome is the result of resolving a key against the slot array.
// It is internal control flow only and never crosses the public API.
type probeOutcome int

const (
	// probeHit: the key occupies the returned position.
	probeHit probeOutcome = iota
	// probeInsert: the returned position is the empty slot where the key
	// belongs. Only produced in insert mode.
	probeInsert
	// probeMissing: the key is not in the table.
	probeMissing
	// probeFull: every slot is occupied and none holds the key. Only
	// produced in insert mode; signals the caller to grow.
	probeFull
)

// probe scans at most len(slots) positions starting at hash(key), wrapping.
// An empty slot terminates the scan: nothing past it can belong to the
// key's cluster, because deletion rehashes clusters instead of leaving
// tombstones.
func (t *table[V]) probe(key string, forInsert bool) (int, probeOutcome) {
	pos := t.hashFunc(key, len(t.slots))

	if forInsert && t.count == len(t.slots) {
		return 0, probeFull
	}

	for range t.slots {
		switch slot := t.slots[pos]; {
		case slot == nil:
			if forInsert {
				return pos, probeInsert
			}
			return 0, probeMissing
		case slot.key == key:
			return pos, probeHit
		}

		pos = (pos + 1) % len(t.slots)
	}

	return 0, probeMissing
}

func (t *table[V]) get(key string) (V, error) {
	pos, outcome := t.probe(key, false)
	if outcome != probeHit {
		var zero V
		return zero, ErrKeyNotFound
	}

	return t.slots[pos].value, nil
}

func (t *table[V]) set(key string, value V) error {
	for attempt := 0; ; attempt++ {
		pos, outcome := t.probe(key, true)

		switch outcome {
		case probeHit:
			t.slots[pos].value = value
			return nil

		case probeInsert:
			t.slots[pos] = &entry[V]{key: key, value: value}
			t.count++
			return nil

		case probeFull:
			// Growth strictly increases capacity past the current count,
			// so a second full outcome within one call is impossible
			// unless the growth arithmetic is broken.
			if attempt > 0 {
				panic("probemap: table full after growth")
			}
			if err := t.grow(); err != nil {
				return err
			}

		default:
			panic("probemap: probe exhausted with free slots on record")
		}
	}
}

func (t *table[V]) delete(key string) error {
	pos, outcome := t.probe(key, false)
	if outcome != probeHit {
		return ErrKeyNotFound
	}

	t.slots[pos] = nil
	t.count--

	// Rehash the remainder of the primary cluster so no entry is stranded
	// behind the hole. The first empty slot bounds the walk: the no-gap
	// invariant held before the delete, so nothing beyond it could have
	// probed through the cleared position.
	pos = (pos + 1) % len(t.slots)
	for t.slots[pos] != nil {
		e := t.slots[pos]
		t.slots[pos] = nil
		t.count--

		// Cannot fail: a slot was just freed, so the reinsert never sees
		// a full table.
		_ = t.set(e.key, e.value)

		pos = (pos + 1) % len(t.slots)
	}

	return nil
}

// grow rebuilds the table at the next scheduled prime capacity and adopts
// the rebuilt storage. Entries are reinserted in physical slot order; keys
// are unique, so order only affects layout, never content.
func (t *table[V]) grow() error {
	if t.nextPrime >= len(primes) {
		return ErrCapacityExhausted
	}

	var grown table[V]
	grown.init(primes[t.nextPrime], WithHashFunc[V](t.hashFunc))
	t.nextPrime++

	for _, e := range t.slots {
		if e != nil {
			if err := grown.set(e.key, e.value); err != nil {
				return err
			}
		}
	}

	t.slots = grown.slots
	t.count = grown.count

	return nil
}
