// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
)

// MetabolicsUsecase defines the interface for metabolic estimate operations.
type MetabolicsUsecase interface {
	ComputeMetabolics(ctx context.Context, input *ComputeMetabolicsInput) (*MetabolicReport, error)
}

// --- Input DTOs ---

// ComputeMetabolicsInput carries the raw biometric fields as submitted by
// the caller. Fields are validated against domain constraints before any
// computation happens.
type ComputeMetabolicsInput struct {
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	Goals         string  `json:"goals,omitempty"`
}

// --- Output DTOs ---

// MetabolicReport is the computed metabolic estimate returned to the
// delivery layer. All calorie figures are kcal/day rounded to one decimal.
type MetabolicReport struct {
	BMR                float64 `json:"bmr"`
	DailyCalorieNeed   float64 `json:"daily_calories"`
	WeightLossCalories float64 `json:"weight_loss_calories"`
	WeightGainCalories float64 `json:"weight_gain_calories"`
	ActivityLevel      string  `json:"activity_level"`
}
