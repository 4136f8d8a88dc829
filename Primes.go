package Go_Collections

// DefaultCapacity is the number of entries a table is sized for when no capacity is given.
const DefaultCapacity = 50

// NextPrime returns the smallest prime >= n. Returns 2 for n<=2.
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n&1 == 0 {
		n++
	}
	for ; !isPrime(n); n += 2 {
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
