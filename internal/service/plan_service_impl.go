package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/avezina/cadence/internal/builder"
	"github.com/avezina/cadence/internal/contract"
	"github.com/avezina/cadence/internal/domain"
	"github.com/avezina/cadence/internal/repository"
	"github.com/avezina/cadence/internal/scheduler"
)

type planService struct {
	plans   repository.PlanStore
	builder *builder.Builder
	rng     *rand.Rand
}

// NewPlanService wires a PlanService over the given store and builder.
// The rng drives slot allocation; callers seed it once at startup.
func NewPlanService(plans repository.PlanStore, b *builder.Builder, rng *rand.Rand) PlanService {
	return &planService{plans: plans, builder: b, rng: rng}
}

func (s *planService) Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.plans.Exists(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		// Generation is idempotent per date; an existing plan is
		// never silently regenerated.
		return &contract.GenerateResult{Date: req.Date, AlreadyExists: true}, nil
	}

	day, err := time.ParseInLocation(domain.DateLayout, req.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid plan date %q: %w", req.Date, err)
	}

	result := &contract.GenerateResult{Date: req.Date}
	var actions []domain.Action

	// Iterate types in canonical order so a seeded rng reproduces the
	// same plan.
	for _, t := range domain.AllActionTypes {
		count := req.Counts[t]
		if count <= 0 {
			continue
		}
		slots := scheduler.AllocateSlots(s.rng, count, scheduler.WindowFor(t))
		result.Skipped += count - len(slots)
		for _, slot := range slots {
			actions = append(actions, s.builder.Build(ctx, t, day, slot))
		}
	}

	if len(actions) == 0 {
		// No plan file at all: distinct from an existing empty plan.
		return result, nil
	}

	domain.SortChronological(actions)
	if err := s.plans.Save(ctx, req.Date, actions); err != nil {
		return nil, fmt.Errorf("saving plan for %s: %w", req.Date, err)
	}

	result.Created = len(actions)
	return result, nil
}

func (s *planService) Plan(ctx context.Context, date string) ([]domain.Action, error) {
	return s.plans.Load(ctx, date)
}

func (s *planService) ListDates(ctx context.Context) ([]string, error) {
	return s.plans.ListDates(ctx)
}

func (s *planService) AddAction(ctx context.Context, date string, a domain.Action) error {
	actions, err := s.plans.Load(ctx, date)
	if err != nil {
		return err
	}
	actions = append(actions, a)
	return s.plans.Save(ctx, date, actions)
}

func (s *planService) UpdateAction(ctx context.Context, date string, index int, a domain.Action) error {
	actions, err := s.plans.Load(ctx, date)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(actions) {
		return actionNotFound(date, index)
	}
	a.Executed = actions[index].Executed
	actions[index] = a
	return s.plans.Save(ctx, date, actions)
}

func (s *planService) DeleteAction(ctx context.Context, date string, index int) error {
	actions, err := s.plans.Load(ctx, date)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(actions) {
		return actionNotFound(date, index)
	}
	actions = append(actions[:index], actions[index+1:]...)
	return s.plans.Save(ctx, date, actions)
}

func (s *planService) ToggleExecuted(ctx context.Context, date string, index int) (bool, error) {
	actions, err := s.plans.Load(ctx, date)
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(actions) {
		return false, actionNotFound(date, index)
	}
	actions[index].Executed = !actions[index].Executed
	if err := s.plans.Save(ctx, date, actions); err != nil {
		return false, err
	}
	return actions[index].Executed, nil
}

func (s *planService) DeletePlan(ctx context.Context, date string) error {
	return s.plans.Delete(ctx, date)
}

func actionNotFound(date string, index int) error {
	return fmt.Errorf("action %d in plan %s: %w", index, date, repository.ErrNotFound)
}
