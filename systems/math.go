package systems

// clamp clamps v between minVal and maxVal.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// sign returns -1, 0 or 1 matching the sign of v.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// abs returns the absolute value of v.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
