package service

import (
	"context"

	"github.com/avezina/cadence/internal/contract"
	"github.com/avezina/cadence/internal/domain"
)

// PlanService covers plan generation and manual plan maintenance.
type PlanService interface {
	// Generate creates a day's plan from per-type counts. A no-op if a
	// plan already exists for the date; writes nothing when generation
	// produces zero actions.
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResult, error)

	// Plan returns the actions for a date, empty if no plan exists.
	Plan(ctx context.Context, date string) ([]domain.Action, error)

	// ListDates returns the sorted dates that have plans.
	ListDates(ctx context.Context) ([]string, error)

	// AddAction appends a user-written action to a day's plan,
	// creating the plan if none exists.
	AddAction(ctx context.Context, date string, a domain.Action) error

	// UpdateAction replaces the action at index, preserving its
	// current executed flag.
	UpdateAction(ctx context.Context, date string, index int, a domain.Action) error

	// DeleteAction removes the action at index.
	DeleteAction(ctx context.Context, date string, index int) error

	// ToggleExecuted flips the executed flag at index in either
	// direction and returns the new value. This is the only sanctioned
	// path back from executed to pending.
	ToggleExecuted(ctx context.Context, date string, index int) (bool, error)

	// DeletePlan removes a whole day's plan.
	DeletePlan(ctx context.Context, date string) error
}
