package impl

import (
	"context"
	"testing"

	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/errors"
	"advisor/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns an input that passes every validation; individual tests
// break one field at a time.
func validInput() *usecase.ComputeMetabolicsInput {
	return &usecase.ComputeMetabolicsInput{
		Age:           30,
		Weight:        80,
		Height:        180,
		Sex:           "male",
		ActivityLevel: "moderately_active",
	}
}

func TestMetabolicsService_ComputeMetabolics_ValidationFailures(t *testing.T) {
	service := newMetabolicsService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(in *usecase.ComputeMetabolicsInput)
		wantField string
	}{
		{
			name:      "zero age",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Age = 0 },
			wantField: "age",
		},
		{
			name:      "negative age",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Age = -4 },
			wantField: "age",
		},
		{
			name:      "age above limit",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Age = 121 },
			wantField: "age",
		},
		{
			name:      "zero weight",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Weight = 0 },
			wantField: "weight",
		},
		{
			name:      "negative weight",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Weight = -60 },
			wantField: "weight",
		},
		{
			name:      "zero height",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Height = 0 },
			wantField: "height",
		},
		{
			name:      "negative height",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Height = -170 },
			wantField: "height",
		},
		{
			name:      "unknown sex",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Sex = "other" },
			wantField: "sex",
		},
		{
			name:      "empty sex",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Sex = "" },
			wantField: "sex",
		},
		{
			name:      "uppercase sex is not coerced",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.Sex = "Male" },
			wantField: "sex",
		},
		{
			name:      "unknown activity level",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.ActivityLevel = "extreme" },
			wantField: "activityLevel",
		},
		{
			name:      "empty activity level",
			mutate:    func(in *usecase.ComputeMetabolicsInput) { in.ActivityLevel = "" },
			wantField: "activityLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			report, err := service.ComputeMetabolics(ctx, input)
			require.Error(t, err)
			assert.Nil(t, report)

			var fieldErr *domainerrors.FieldValidationError
			require.True(t, errors.As(err, &fieldErr), "expected FieldValidationError, got %T", err)
			assert.Equal(t, tt.wantField, fieldErr.Field())
		})
	}
}

func TestMetabolicsService_ComputeMetabolics_BoundaryAges(t *testing.T) {
	service := newMetabolicsService(t)
	ctx := context.Background()

	for _, age := range []int{1, 120} {
		input := validInput()
		input.Age = age

		report, err := service.ComputeMetabolics(ctx, input)
		require.NoError(t, err, "age %d should be accepted", age)
		assert.Positive(t, report.BMR)
	}
}
