package probemap

import "errors"

var (
	// ErrKeyNotFound is returned by Get and Delete when the key is absent.
	ErrKeyNotFound = errors.New("probemap: key not found")

	// ErrCapacityExhausted is returned by Set when the table must grow but
	// the prime capacity schedule has no further entry.
	ErrCapacityExhausted = errors.New("probemap: capacity schedule exhausted")
)
