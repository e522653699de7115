package probemap

// HashFunc maps a key to a slot position in [0, capacity).
type HashFunc func(key string, capacity int) int

const (
	hashSeed = 31415
	hashBase = 31
)

// polyHash is the default hash: a rolling polynomial over the key's code
// points. The multiplier is re-derived after every character modulo
// capacity-1, so positions stay well distributed yet deterministic across
// runs. Collisions are expected and resolved by probing.
func polyHash(key string, capacity int) int {
	value := 0
	a := hashSeed

	for _, r := range key {
		value = (int(r) + a*value) % capacity
		a = a * hashBase % (capacity - 1)
	}

	return value
}
