// Package entity contains the core business objects of the project.
package entity

// ActivityLevel represents how physically active a user is day to day.
// Each level maps to a fixed TDEE multiplier applied to the BMR.
type ActivityLevel string

const (
	// ActivitySedentary indicates little or no exercise.
	ActivitySedentary ActivityLevel = "sedentary"
	// ActivityLightlyActive indicates light exercise 1-3 days per week.
	ActivityLightlyActive ActivityLevel = "lightly_active"
	// ActivityModeratelyActive indicates moderate exercise 3-5 days per week.
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	// ActivityVeryActive indicates hard exercise 6-7 days per week.
	ActivityVeryActive ActivityLevel = "very_active"
	// ActivityExtremelyActive indicates very hard exercise or a physical job.
	ActivityExtremelyActive ActivityLevel = "extremely_active"
)

// activityMultipliers maps each activity level to its TDEE multiplier.
// Lookup is by exact match; unknown levels are rejected during validation,
// never coerced to a default.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

// String returns the string representation of the ActivityLevel.
func (a ActivityLevel) String() string {
	return string(a)
}

// IsValid checks if the ActivityLevel is a valid value.
func (a ActivityLevel) IsValid() bool {
	_, ok := activityMultipliers[a]

	return ok
}

// Multiplier returns the TDEE multiplier for the activity level.
// The second return value is false for unknown levels.
func (a ActivityLevel) Multiplier() (float64, bool) {
	mult, ok := activityMultipliers[a]

	return mult, ok
}
