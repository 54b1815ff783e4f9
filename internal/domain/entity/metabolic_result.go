// Package entity contains the core business objects of the project.
package entity

import "math"

// MetabolicResult is the immutable outcome of a metabolic calculation.
// It is derived purely from a validated Profile, computed on demand and
// never persisted.
type MetabolicResult struct {
	BMR              float64 // Basal metabolic rate in kcal/day, rounded to one decimal.
	DailyCalorieNeed float64 // TDEE in kcal/day (BMR x activity multiplier), rounded to one decimal.
}

// ComputeMetabolics derives a MetabolicResult from a validated profile.
// The calculation is pure and deterministic: identical profiles produce
// bit-for-bit identical results. The daily calorie need multiplies the
// unrounded BMR so the rounding step is applied exactly once per figure.
//
// The profile must have passed Validate; an unknown activity level here is
// a programming error and yields a zero result.
func ComputeMetabolics(p *Profile) MetabolicResult {
	mult, ok := p.ActivityLevel.Multiplier()
	if !ok {
		return MetabolicResult{}
	}

	bmr := p.BasalMetabolicRate()

	return MetabolicResult{
		BMR:              roundToTenth(bmr),
		DailyCalorieNeed: roundToTenth(bmr * mult),
	}
}

// roundToTenth rounds to one decimal place, half away from zero.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
