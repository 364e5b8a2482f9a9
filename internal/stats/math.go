package stats

import "slices"

// Median finds the median of a slice of seconds values.
// Returns 0 for an empty slice; that sentinel is part of the contract, an
// empty sample is sparse data, not an error.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Work on a copy to avoid mutating the original
	temp := make([]float64, len(values))
	copy(temp, values)
	slices.Sort(temp)

	n := len(temp)
	if n%2 == 1 {
		return temp[n/2]
	}
	return (temp[n/2-1] + temp[n/2]) / 2.0
}

// Percentile returns the value at rank floor((n-1)*p) of the ascending-sorted
// input. p is clamped to [0,1]. Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	temp := make([]float64, len(values))
	copy(temp, values)
	slices.Sort(temp)

	idx := int(float64(len(temp)-1) * p)
	return temp[idx]
}

// IQR returns the interquartile range, P75 minus P25. Both quartiles use the
// same floor((n-1)*p) rank as Percentile.
func IQR(values []float64) float64 {
	return Percentile(values, 0.75) - Percentile(values, 0.25)
}

// CleanTime is the elapsed time net of penalties, floored at zero. A run
// whose penalties exceed its elapsed time clamps to 0, never negative.
func CleanTime(totalSeconds, penaltySeconds float64) float64 {
	clean := totalSeconds - penaltySeconds
	if clean < 0 {
		return 0
	}
	return clean
}
