package probemap

type Stats struct {
	Size        int
	Capacity    int
	Load        float64
	GrowthsLeft int
}

// Stats returns a point-in-time diagnostic snapshot.
func (t *table[V]) Stats() Stats {
	return Stats{
		Size:        t.count,
		Capacity:    len(t.slots),
		Load:        float64(t.count) / float64(len(t.slots)),
		GrowthsLeft: len(primes) - t.nextPrime,
	}
}
