// Package prime provides small primality utilities: a deterministic
// trial-division test and a next-prime search.
//
// Both run in O(√n) per candidate, which is plenty for their intended
// consumer — prime-sized hash-table capacities — where n stays well below
// 2^31 and calls happen once per table growth.
package prime

// IsPrime reports whether n is prime, by trial division over the 6k±1
// candidates. Complexity: O(√n).
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}
	// Every prime > 3 is of the form 6k±1; test only those divisors.
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Next returns the smallest prime >= n (2 for any n below 2).
// Complexity: O(g·√n) where g is the prime gap at n.
func Next(n int64) int64 {
	if n <= 2 {
		return 2
	}
	for !IsPrime(n) {
		n++
	}

	return n
}
