package numeric

// Sieve returns a boolean mask of length n where mask[i] is true iff
// i+1 is prime, using the Sieve of Eratosthenes. Per spec.md §4.1's
// convention, index 0 (representing the integer 1) is forced to true:
// the fundamental must contribute to the harmonic set even though 1
// is not itself prime.
func Sieve(n int) []bool {
	if n < 1 {
		return nil
	}
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	for i := 2; i*i <= n; i++ {
		if !mask[i-1] {
			continue
		}
		for j := i * i; j <= n; j += i {
			mask[j-1] = false
		}
	}
	mask[0] = true
	return mask
}
