package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"advisor/config"
	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetabolicsService(t *testing.T) usecase.MetabolicsUsecase {
	t.Helper()

	cfg := &config.Config{
		Metabolics: &config.MetabolicsConfig{
			GoalCalorieDelta: 500,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewMetabolicsService(cfg, logger)
}

func TestMetabolicsService_ComputeMetabolics_MaleModeratelyActive(t *testing.T) {
	service := newMetabolicsService(t)

	ctx := context.Background()
	input := &usecase.ComputeMetabolicsInput{
		Age:           30,
		Weight:        80,
		Height:        180,
		Sex:           "male",
		ActivityLevel: "moderately_active",
	}

	// 10*80 + 6.25*180 - 5*30 + 5 = 1780.0; 1780.0 * 1.55 = 2759.0
	report, err := service.ComputeMetabolics(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1780.0, report.BMR)
	assert.Equal(t, 2759.0, report.DailyCalorieNeed)
	assert.Equal(t, 2259.0, report.WeightLossCalories)
	assert.Equal(t, 3259.0, report.WeightGainCalories)
	assert.Equal(t, "moderately_active", report.ActivityLevel)
}

func TestMetabolicsService_ComputeMetabolics_FemaleSedentary(t *testing.T) {
	service := newMetabolicsService(t)

	ctx := context.Background()
	input := &usecase.ComputeMetabolicsInput{
		Age:           25,
		Weight:        60,
		Height:        165,
		Sex:           "female",
		ActivityLevel: "sedentary",
	}

	// Raw BMR is 600 + 1031.25 - 125 - 161 = 1345.25, reported as 1345.3 after
	// one-decimal rounding. The daily need multiplies the unrounded BMR:
	// 1345.25 * 1.2 = 1614.3.
	report, err := service.ComputeMetabolics(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1345.3, report.BMR)
	assert.Equal(t, 1614.3, report.DailyCalorieNeed)
}

func TestMetabolicsService_ComputeMetabolics_Deterministic(t *testing.T) {
	service := newMetabolicsService(t)

	ctx := context.Background()
	input := &usecase.ComputeMetabolicsInput{
		Age:           42,
		Weight:        77.7,
		Height:        171.3,
		Sex:           "female",
		ActivityLevel: "very_active",
	}

	first, err := service.ComputeMetabolics(ctx, input)
	require.NoError(t, err)

	for range 10 {
		again, err := service.ComputeMetabolics(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMetabolicsService_ComputeMetabolics_AllActivityLevels(t *testing.T) {
	service := newMetabolicsService(t)
	ctx := context.Background()

	tests := []struct {
		level     string
		wantDaily float64
	}{
		{level: "sedentary", wantDaily: 2136.0},         // 1780 * 1.2
		{level: "lightly_active", wantDaily: 2447.5},    // 1780 * 1.375
		{level: "moderately_active", wantDaily: 2759.0}, // 1780 * 1.55
		{level: "very_active", wantDaily: 3070.5},       // 1780 * 1.725
		{level: "extremely_active", wantDaily: 3382.0},  // 1780 * 1.9
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			report, err := service.ComputeMetabolics(ctx, &usecase.ComputeMetabolicsInput{
				Age:           30,
				Weight:        80,
				Height:        180,
				Sex:           "male",
				ActivityLevel: tt.level,
			})
			require.NoError(t, err)
			assert.Equal(t, 1780.0, report.BMR)
			assert.Equal(t, tt.wantDaily, report.DailyCalorieNeed)
		})
	}
}

func TestMetabolicsService_ComputeMetabolics_ConfiguredGoalDelta(t *testing.T) {
	cfg := &config.Config{
		Metabolics: &config.MetabolicsConfig{
			GoalCalorieDelta: 250,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewMetabolicsService(cfg, logger)

	report, err := service.ComputeMetabolics(context.Background(), &usecase.ComputeMetabolicsInput{
		Age:           30,
		Weight:        80,
		Height:        180,
		Sex:           "male",
		ActivityLevel: "sedentary",
	})
	require.NoError(t, err)
	assert.Equal(t, report.DailyCalorieNeed-250, report.WeightLossCalories)
	assert.Equal(t, report.DailyCalorieNeed+250, report.WeightGainCalories)
}

func TestMetabolicsService_ComputeMetabolics_UsesRequestScopedLogger(t *testing.T) {
	service := newMetabolicsService(t)

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("request_id", "req-123"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	_, err := service.ComputeMetabolics(ctx, validInput())
	require.NoError(t, err)

	// The debug log must flow through the logger carried in the context,
	// tagging it with the request ID assigned by the middleware.
	assert.Contains(t, buf.String(), "metabolics computed")
	assert.Contains(t, buf.String(), "request_id=req-123")
}

func TestNewMetabolicsService_DefaultsGoalDelta(t *testing.T) {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	NewMetabolicsService(cfg, logger)
	require.NotNil(t, cfg.Metabolics)
	assert.Equal(t, 500.0, cfg.Metabolics.GoalCalorieDelta)
}
