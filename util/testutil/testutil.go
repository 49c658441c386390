package testutil

// Nondecreasing reports whether s is sorted in non-decreasing order.
func Nondecreasing(s []float64) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

// Within reports whether every value of s lies in the half-open interval
// [lo, hi).
func Within(s []float64, lo, hi float64) bool {
	for _, v := range s {
		if v < lo || v >= hi {
			return false
		}
	}
	return true
}

// Mean returns the arithmetic mean of s, or 0 for an empty slice.
func Mean(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	var t float64
	for _, v := range s {
		t += v
	}
	return t / float64(len(s))
}
