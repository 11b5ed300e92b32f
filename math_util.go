package hepce

import "math"

// Discount converts a nominal monthly value v to a present-value
// equivalent at annual rate r after t months (spec GLOSSARY).
func Discount(v, r float64, t int) float64 {
	return v / math.Pow(1+r/12, float64(t))
}

// RateToProbability converts an instantaneous rate to a probability
// (spec GLOSSARY).
func RateToProbability(r float64) float64 {
	return 1 - math.Exp(-r)
}

// ProbabilityToRate converts a probability to an instantaneous rate
// (spec GLOSSARY), the inverse of RateToProbability.
func ProbabilityToRate(p float64) float64 {
	return -math.Log(1 - p)
}
