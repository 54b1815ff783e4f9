// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"advisor/config"
	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/domain/entity"
	"advisor/internal/errors"
	"advisor/internal/usecase"
)

// metabolicsService implements the MetabolicsUsecase interface.
type metabolicsService struct {
	config *config.Config
	logger *slog.Logger
}

// NewMetabolicsService is the constructor for metabolicsService.
func NewMetabolicsService(cfg *config.Config, logger *slog.Logger) usecase.MetabolicsUsecase {
	// If Metabolics is not configured, provide a default configuration
	if cfg.Metabolics == nil {
		cfg.Metabolics = &config.MetabolicsConfig{
			GoalCalorieDelta: 500, // Default to a 500 kcal/day deficit or surplus
		}
	}

	return &metabolicsService{
		config: cfg,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *metabolicsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ComputeMetabolics validates the submitted biometric fields and derives the
// metabolic report. Validation failures are returned as FieldValidationError;
// no computation happens on a rejected profile. The calculation itself is
// pure and cannot fail once validation passed.
func (srv *metabolicsService) ComputeMetabolics(ctx context.Context, input *usecase.ComputeMetabolicsInput) (*usecase.MetabolicReport, error) {
	profile := &entity.Profile{
		Age:           input.Age,
		Weight:        input.Weight,
		Height:        input.Height,
		Sex:           entity.Sex(input.Sex),
		ActivityLevel: entity.ActivityLevel(input.ActivityLevel),
		Goals:         input.Goals,
	}

	if err := profile.Validate(); err != nil {
		srv.log(ctx).Debug("profile rejected", "error", err)

		return nil, errors.WithStack(err)
	}

	result := entity.ComputeMetabolics(profile)
	delta := srv.config.Metabolics.GoalCalorieDelta

	srv.log(ctx).Debug("metabolics computed",
		"activityLevel", profile.ActivityLevel.String(),
		"bmr", result.BMR,
		"dailyCalorieNeed", result.DailyCalorieNeed,
	)

	return &usecase.MetabolicReport{
		BMR:                result.BMR,
		DailyCalorieNeed:   result.DailyCalorieNeed,
		WeightLossCalories: result.DailyCalorieNeed - delta,
		WeightGainCalories: result.DailyCalorieNeed + delta,
		ActivityLevel:      profile.ActivityLevel.String(),
	}, nil
}
