package utils

import "strings"

const (
	FormulaEpley   = "epley"
	FormulaBrzycki = "brzycki"
)

func CalculateEpley1RM(weight float64, reps int) float64 {
	if reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}

	return weight * (1 + float64(reps)/30)
}

// Brzycki is undefined from 37 reps up; those return 0.
func CalculateBrzycki1RM(weight float64, reps int) float64 {
	if reps <= 0 || reps >= 37 {
		return 0
	}

	return weight * 36 / (37 - float64(reps))
}

// Estimate1RM dispatches on the formula name, defaulting to Epley.
func Estimate1RM(formula string, weight float64, reps int) float64 {
	if strings.EqualFold(formula, FormulaBrzycki) {
		return CalculateBrzycki1RM(weight, reps)
	}
	return CalculateEpley1RM(weight, reps)
}
