package common

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts an integer to the range [lo, hi]
func Clamp(x, lo, hi int) int {
	return Max(Min(hi, x), lo)
}

// ClampFloat restricts a float to the range [lo, hi]
func ClampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Chebyshev calculates the chessboard distance between two grid positions.
// Units move diagonally for the same cost as orthogonally, so range checks
// use this rather than Manhattan distance.
func Chebyshev(x1, y1, x2, y2 int) int {
	return Max(Abs(x1-x2), Abs(y1-y2))
}
