// Package idgen allocates small integer ids from a dense reuse pool.
package idgen

// Next returns the smallest non-negative key that is not present in occupied.
// Freed ids are reused before the pool grows: with keys {0, 2} Next returns 1,
// with keys {0, 1, 2} it returns 3.
func Next[K ~int, V any](occupied map[K]V) K {
	n := len(occupied)
	for i := 0; i < n; i++ {
		if _, taken := occupied[K(i)]; !taken {
			return K(i)
		}
	}
	return K(n)
}
