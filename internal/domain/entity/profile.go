// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"

	domainerrors "advisor/internal/domain/errors"
)

const (
	// MinAge is the lowest age accepted for a fitness profile.
	MinAge = 1
	// MaxAge is the highest age accepted for a fitness profile.
	MaxAge = 120
)

// Profile holds the biometric data a user submits for metabolic analysis.
// A Profile must pass Validate before it is handed to the calculator.
type Profile struct {
	Age           int           // Age in whole years, within [MinAge, MaxAge].
	Weight        float64       // Body weight in kilograms, strictly positive.
	Height        float64       // Height in centimeters, strictly positive.
	Sex           Sex           // Formula constant selector, see Sex.
	ActivityLevel ActivityLevel // Day-to-day activity category, see ActivityLevel.
	Goals         string        // Optional free-text fitness goals, passed through untouched.
}

// Validate checks every field against its domain constraint and returns a
// FieldValidationError for the first violated one. Fields are checked in
// declaration order. Invalid enum values are rejected, never substituted
// with a default. A nil return means the profile is safe to compute on.
func (p *Profile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return domainerrors.NewFieldValidationError("age",
			fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge))
	}
	if p.Weight <= 0 {
		return domainerrors.NewFieldValidationError("weight",
			"weight must be a positive number of kilograms")
	}
	if p.Height <= 0 {
		return domainerrors.NewFieldValidationError("height",
			"height must be a positive number of centimeters")
	}
	if !p.Sex.IsValid() {
		return domainerrors.NewFieldValidationError("sex",
			fmt.Sprintf("sex must be %q or %q", SexMale, SexFemale))
	}
	if !p.ActivityLevel.IsValid() {
		return domainerrors.NewFieldValidationError("activityLevel",
			fmt.Sprintf("activityLevel must be one of %q, %q, %q, %q, %q",
				ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
				ActivityVeryActive, ActivityExtremelyActive))
	}

	return nil
}

// BasalMetabolicRate computes the unrounded BMR in kcal/day using the
// Mifflin-St Jeor equation:
//
//	male:   10*weight + 6.25*height - 5*age + 5
//	female: 10*weight + 6.25*height - 5*age - 161
//
// The profile must have passed Validate; the result is undefined otherwise.
func (p *Profile) BasalMetabolicRate() float64 {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	return bmr
}
