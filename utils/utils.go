package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FormatFloat rounds f to round decimal places, NaN and Inf are returned as is.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(round))
	return math.Round(f*scale) / scale
}

// Linspace returns num evenly spaced points over [start, stop], both ends included.
func Linspace(start, stop float64, num int) []float64 {
	if num < 2 {
		return []float64{start}
	}
	return floats.Span(make([]float64, num), start, stop)
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
