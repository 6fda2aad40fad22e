package utils

// HarmonicAverage is the series-conductivity average 2ab/(a+b) used for
// cell-interface permeabilities. An average against a zero component is zero,
// which also keeps the all-zero off-diagonal tensor entries well defined.
func HarmonicAverage(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}
