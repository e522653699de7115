package probemap

const (
	// MinCapacity is the smallest table size New accepts; smaller requests
	// are clamped up.
	MinCapacity = 1

	// DefaultCapacity is a sensible table size for callers with no better
	// estimate.
	DefaultCapacity = 17
)

// primes is the capacity growth schedule. Every resize adopts the prime at
// the table's cursor, which only ever advances; capacities never repeat and
// never shrink.
var primes = []int{
	3, 7, 11, 17, 23, 29, 37, 47, 59, 71, 89, 107, 131, 163, 197, 239, 293,
	353, 431, 521, 631, 761, 919, 1103, 1327, 1597, 1931, 2333, 2801, 3371,
	4049, 4861, 5839, 7013, 8419, 10103, 12143, 14591, 17519, 21023, 25229,
	30313, 36353, 43627, 52361, 62851, 75521, 90523, 108631, 130363, 156437,
	187751, 225307, 270371, 324449, 389357, 467237, 560689, 672827, 807403,
	968897, 1162687, 1395263, 1674319, 2009191, 2411033, 2893249, 3471899,
	4166287, 4999559, 5999471, 7199369,
}
